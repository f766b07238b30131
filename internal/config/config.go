// Package config loads the tutor's TOML configuration.
//
//	log_level = "info"
//	log_file  = "./logs/pathtutor.log"
//
//	[log_rotation]
//	max_size_mb = 100
//	max_backups = 7
//	max_age_days = 30
//	compress = true
//
//	[server]
//	addr = "127.0.0.1:8080"
//	max_body_bytes = 65536
//
//	[tutor]
//	color = true
//	intermediate_tables = true
//	strict_neighbors = false
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Defaults applied after decoding.
const (
	DefaultLogLevel     = "info"
	DefaultServerAddr   = "127.0.0.1:8080"
	DefaultMaxBodyBytes = 64 << 10
	DefaultMaxSizeMB    = 100
	DefaultMaxBackups   = 7
	DefaultMaxAgeDays   = 30
)

// ErrInvalidConfig is returned when a decoded value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration file.
type Config struct {
	LogLevel    string      `toml:"log_level"`
	LogFile     string      `toml:"log_file"`
	LogRotation RotationCfg `toml:"log_rotation"`
	Server      ServerCfg   `toml:"server"`
	Tutor       TutorCfg    `toml:"tutor"`
}

// RotationCfg mirrors lumberjack's rotation knobs.
type RotationCfg struct {
	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
	Compress   bool `toml:"compress"`
}

// ServerCfg configures the HTTP adapter.
type ServerCfg struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// TutorCfg configures the interactive tutor.
type TutorCfg struct {
	Color              bool `toml:"color"`
	IntermediateTables bool `toml:"intermediate_tables"`
	StrictNeighbors    bool `toml:"strict_neighbors"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Tutor: TutorCfg{Color: true, IntermediateTables: true},
		LogRotation: RotationCfg{
			Compress: true,
		},
	}
	cfg.applyDefaults()

	return cfg
}

// Load reads the TOML file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("config: unknown key %q in %s ignored", key.String(), path)
	}
	cfg.applyDefaults()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills zero values.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.LogRotation.MaxSizeMB == 0 {
		c.LogRotation.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.LogRotation.MaxBackups == 0 {
		c.LogRotation.MaxBackups = DefaultMaxBackups
	}
	if c.LogRotation.MaxAgeDays == 0 {
		c.LogRotation.MaxAgeDays = DefaultMaxAgeDays
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be positive", ErrInvalidConfig)
	}
	if c.LogRotation.MaxSizeMB < 0 || c.LogRotation.MaxBackups < 0 || c.LogRotation.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log_rotation values must be non-negative", ErrInvalidConfig)
	}

	return nil
}

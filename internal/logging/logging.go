// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/pathtutor/internal/config"
)

// TimestampFormat is used by the text formatter.
const TimestampFormat = "2006-01-02 15:04:05"

// Setup configures the standard logrus logger from cfg.
//
// Log lines go to console; when cfg.LogFile is set they are also written to
// a lumberjack-rotated file. The returned closer flushes and closes the file
// (a no-op without one).
func Setup(cfg *config.Config, console io.Writer) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	if cfg.LogFile == "" {
		log.SetOutput(console)
		return nopCloser{}, nil
	}

	if err = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, err
	}
	fileLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogRotation.MaxSizeMB,
		MaxBackups: cfg.LogRotation.MaxBackups,
		MaxAge:     cfg.LogRotation.MaxAgeDays,
		Compress:   cfg.LogRotation.Compress,
	}
	log.SetOutput(io.MultiWriter(console, fileLogger))
	log.Debugf("Logging initialized: file=%s", cfg.LogFile)

	return fileLogger, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

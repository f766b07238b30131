package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtutor/internal/config"
	"github.com/katalvlaran/pathtutor/internal/logging"
)

func TestSetup_ConsoleAndFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "tutor.log")

	var console bytes.Buffer
	closer, err := logging.Setup(cfg, &console)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	log.WithField("source", "A").Info("run finished")
	require.NoError(t, closer.Close())

	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.Contains(t, console.String(), "run finished")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source=A")
}

func TestSetup_ConsoleOnly(t *testing.T) {
	cfg := config.Default()

	var console bytes.Buffer
	closer, err := logging.Setup(cfg, &console)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	log.Warn("careful")
	assert.NoError(t, closer.Close())
	assert.Contains(t, console.String(), "careful")
}

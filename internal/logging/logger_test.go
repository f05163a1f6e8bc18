package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modrepo/localtrack/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()

	l.Info("test message")
	l.Success("done")
	l.Debug(false, "should not panic")
}

func TestNewLogger_FileSinkIsPlain(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "localtrack.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)

	l.Info("to file")
	l.Warn("careful")
	l.Error("broken")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "to file")
	assert.Contains(t, text, "careful")
	assert.Contains(t, text, "broken")
	assert.NotContains(t, text, "\x1b[", "file sink must not contain ANSI escapes")
}

func TestLogger_CloseIdempotent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "x.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}

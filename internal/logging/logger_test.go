package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}
}

func TestGetLogFilePath(t *testing.T) {
	setHome(t)

	logPath, err := getLogFilePath("foldingcell")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(logPath))

	homeDir, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, filepath.Join(homeDir, "Library", "Logs", "foldingcell", "foldingcell.log"), logPath)
	case "linux":
		assert.Equal(t, filepath.Join(homeDir, ".local", "state", "foldingcell", "foldingcell.log"), logPath)
	}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
	}{
		{"info level", false},
		{"debug level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setHome(t)

			logger, err := InitLogger("foldingcell-test", tt.debug)
			require.NoError(t, err)
			require.NotNil(t, logger)

			logger.Info("test message", slog.String("key", "value"))

			logPath, _ := getLogFilePath("foldingcell-test")
			info, err := os.Stat(logPath)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestRotateIfNeeded(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	require.NoError(t, rotateIfNeeded(logPath), "missing file is not an error")

	require.NoError(t, os.WriteFile(logPath, bytes.Repeat([]byte("x"), maxLogSize), 0644))
	require.NoError(t, rotateIfNeeded(logPath))

	_, err := os.Stat(logPath + ".1")
	assert.NoError(t, err)
	_, err = os.Stat(logPath)
	assert.True(t, os.IsNotExist(err))
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden")
	logger.Info("shown", slog.Int("panels", 4))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, float64(4), record["panels"])
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	Component(New(&buf, true), "sequencer").Debug("phase")

	assert.Contains(t, buf.String(), `"component":"sequencer"`)
	assert.NotNil(t, Component(nil, "x"))
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)

	logger.Info("test info")
	logger.Debug("test debug")
	logger.Error("test error")
	logger.Warn("test warn")
}

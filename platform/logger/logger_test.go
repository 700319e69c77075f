package logger

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New("Test-Service", WithOutput(path), WithLevel(zapcore.DebugLevel))
	require.NoError(t, err)

	log.Debugw("startup", "answer", 42)
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "Test-Service", entry["service"])
	assert.Equal(t, "startup", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 42, entry["answer"])
}

func TestNewSkipsDebugByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New("Test-Service", WithOutput(path))
	require.NoError(t, err)

	log.Debug("hidden")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

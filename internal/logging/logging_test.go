package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NoFileIsNop(t *testing.T) {
	logger, err := New("", "debug", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studentdb.log")

	logger, err := New(path, "info", false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Added student", zap.String("id", "1"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Added student"`)
	assert.Contains(t, string(data), `"id":"1"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studentdb.log")

	logger, err := New(path, "error", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud", false)
	assert.Error(t, err)
}

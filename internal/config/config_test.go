package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultDataFile verifies students.json is the default backing file
func TestDefaultDataFile(t *testing.T) {
	cfg := DefaultConfig()
	expected := "students.json"

	if cfg.DataFile != expected {
		t.Errorf("Default data file = %q, want %q", cfg.DataFile, expected)
	}
}

// TestDefaultUI verifies the UI is picked from the terminal by default
func TestDefaultUI(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UI != UIAuto {
		t.Errorf("Default ui = %q, want %q", cfg.UI, UIAuto)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studentdb.yaml")
	doc := "data_file: /tmp/class.json\nui: plain\nlog_level: DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/class.json", cfg.DataFile)
	assert.Equal(t, UIPlain, cfg.UI)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "green", cfg.Theme)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studentdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: from-file.json\n"), 0644))
	t.Setenv("STUDENTDB_DATA_FILE", "from-env.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.DataFile)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := &Config{UI: "gui"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui")

	cfg = &Config{LogLevel: "loud"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultConfig(), cfg)
}

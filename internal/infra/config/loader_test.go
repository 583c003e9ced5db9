package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) *Loader {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600)
	require.NoError(t, err)
	return NewLoaderWithDir(dir)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Storage.Path)
	assert.Empty(t, cfg.Notifications.Command)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_AllSections(t *testing.T) {
	loader := writeConfig(t, `
[storage]
path = "/tmp/my-tasks.json"

[notifications]
command = "dunstify"

[log]
level = "debug"
`)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my-tasks.json", cfg.Storage.Path)
	assert.Equal(t, "dunstify", cfg.Notifications.Command)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	loader := writeConfig(t, `
[storage]
path = "/tmp/t.json"
mode = "fancy"

[server]
port = 8080
`)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/t.json", cfg.Storage.Path)
	assert.Equal(t, []string{
		"unknown key in [storage]: mode",
		"unknown section: server",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	loader := writeConfig(t, "not = [valid")

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoader_Load_PartialOverride(t *testing.T) {
	loader := writeConfig(t, `
[log]
level = "warn"
`)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	// Unset sections keep their defaults
	assert.Empty(t, cfg.Storage.Path)
}

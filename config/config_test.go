package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshfetch/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(map[string]interface{}{"config_dir": dir})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Empty(t, cfg.Logo)
	assert.Equal(t, 0, cfg.Verbosity)
	assert.Equal(t, []string{"zsh", "-c", "printf $ZSH_VERSION"}, cfg.Shells["zsh"])
	assert.Equal(t, filepath.Join(dir, "info.lua"), cfg.InfoPath())
	assert.Equal(t, filepath.Join(dir, "art.lua"), cfg.ArtPath())
	assert.Equal(t, filepath.Join(dir, "layout.lua"), cfg.LayoutPath())
}

func TestLoadFileMergesShells(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
logo = "arch"

[shells]
nu = ["nu", "-c", "version | get version"]
`)

	cfg, err := Load(map[string]interface{}{"config_dir": dir})
	require.NoError(t, err)

	assert.Equal(t, "arch", cfg.Logo)
	assert.Equal(t, []string{"nu", "-c", "version | get version"}, cfg.Shells["nu"])
	assert.Contains(t, cfg.Shells, "bash", "defaults survive the merge")
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `logo = "arch"`)
	t.Setenv("FRESHFETCH_LOGO", "debian")
	t.Setenv("FRESHFETCH_VERBOSITY", "2")

	cfg, err := Load(map[string]interface{}{"config_dir": dir})
	require.NoError(t, err)
	assert.Equal(t, "debian", cfg.Logo, "env beats file")
	assert.Equal(t, 2, cfg.Verbosity)

	cfg, err = Load(map[string]interface{}{"config_dir": dir, "logo": "fedora"})
	require.NoError(t, err)
	assert.Equal(t, "fedora", cfg.Logo, "flags beat env")
}

func TestLoadConfigDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `logo = "ubuntu"`)
	t.Setenv("FRESHFETCH_CONFIG_DIR", dir)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, "ubuntu", cfg.Logo)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `logo = `)

	_, err := Load(map[string]interface{}{"config_dir": dir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
}

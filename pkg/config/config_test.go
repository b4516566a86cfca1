package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadWithPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "dmenu", cfg.DefaultLauncher)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Empty(t, cfg.Launchers.Dmenu.Args)
}

func TestLoadMergesUserConfig(t *testing.T) {
	userPath := filepath.Join(t.TempDir(), "config.toml")
	user := `
default_launcher = "rofi"

[launchers.rofi]
args = ["-theme", "gruvbox"]

[notifications]
enabled = true
`
	require.NoError(t, os.WriteFile(userPath, []byte(user), 0o644))

	cfg, err := loadWithPath(userPath)
	require.NoError(t, err)

	assert.Equal(t, "rofi", cfg.DefaultLauncher)
	assert.Equal(t, []string{"-theme", "gruvbox"}, cfg.Launchers.Rofi.Args)
	assert.True(t, cfg.Notifications.Enabled)
	// Untouched fields keep their defaults.
	assert.Empty(t, cfg.Launchers.Dmenu.Args)
}

func TestLoadUnreadableUserConfigFallsBack(t *testing.T) {
	userPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(userPath, []byte("not = [valid"), 0o644))

	cfg, err := loadWithPath(userPath)
	require.NoError(t, err)
	assert.Equal(t, "dmenu", cfg.DefaultLauncher)
}

func TestLauncherArgs(t *testing.T) {
	cfg := &Config{}
	cfg.Launchers.Fzf.Args = []string{"--height", "40%"}

	assert.Equal(t, []string{"--height", "40%"}, cfg.LauncherArgs("fzf"))
	assert.Nil(t, cfg.LauncherArgs("wofi"))
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmenu-drun", "config.toml")

	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfigData, string(data))

	// A second init must not clobber an existing config.
	assert.Error(t, writeDefaultConfig(path))
}

// Package config provides configuration management for dmenu-drun.
// It handles loading and merging of the embedded defaults with an
// optional user config file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

//go:embed default.toml
var defaultConfigData string

// Config is the resolved configuration for one invocation. It is built
// once at startup and threaded through explicitly; there is no package
// global.
type Config struct {
	DefaultLauncher string             `toml:"default_launcher"`
	Launchers       LauncherConfig     `toml:"launchers"`
	Notifications   NotificationConfig `toml:"notifications"`
}

// LauncherConfig holds extra arguments per selector backend.
type LauncherConfig struct {
	Dmenu  LauncherCommand `toml:"dmenu"`
	Rofi   LauncherCommand `toml:"rofi"`
	Fzf    LauncherCommand `toml:"fzf"`
	Bemenu LauncherCommand `toml:"bemenu"`
	Fuzzel LauncherCommand `toml:"fuzzel"`
}

// LauncherCommand describes how a selector is invoked.
type LauncherCommand struct {
	Args []string `toml:"args"`
}

// NotificationConfig controls the desktop notification sent when a
// dispatch fails.
type NotificationConfig struct {
	Enabled bool `toml:"enabled"`
}

// configFile mirrors Config with pointer fields so a user file can
// override only what it sets.
type configFile struct {
	DefaultLauncher *string        `toml:"default_launcher"`
	Launchers       LauncherConfig `toml:"launchers"`
	Notifications   struct {
		Enabled *bool `toml:"enabled"`
	} `toml:"notifications"`
}

// UserConfigPath returns the user config file location.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "dmenu-drun", "config.toml")
}

// Load returns the embedded defaults merged under the user config file,
// when one exists. An unreadable user file degrades to the defaults
// with a warning rather than failing the run.
func Load() (*Config, error) {
	return loadWithPath(UserConfigPath())
}

func loadWithPath(userPath string) (*Config, error) {
	cfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	if _, err := os.Stat(userPath); err != nil {
		return cfg, nil
	}

	var user configFile
	if _, err := toml.DecodeFile(userPath, &user); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load user config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return cfg, nil
	}

	mergeConfig(cfg, &user)
	return cfg, nil
}

func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfig overlays the fields the user file actually set.
func mergeConfig(merged *Config, user *configFile) {
	if user.DefaultLauncher != nil && *user.DefaultLauncher != "" {
		merged.DefaultLauncher = *user.DefaultLauncher
	}

	if len(user.Launchers.Dmenu.Args) > 0 {
		merged.Launchers.Dmenu = user.Launchers.Dmenu
	}
	if len(user.Launchers.Rofi.Args) > 0 {
		merged.Launchers.Rofi = user.Launchers.Rofi
	}
	if len(user.Launchers.Fzf.Args) > 0 {
		merged.Launchers.Fzf = user.Launchers.Fzf
	}
	if len(user.Launchers.Bemenu.Args) > 0 {
		merged.Launchers.Bemenu = user.Launchers.Bemenu
	}
	if len(user.Launchers.Fuzzel.Args) > 0 {
		merged.Launchers.Fuzzel = user.Launchers.Fuzzel
	}

	if user.Notifications.Enabled != nil {
		merged.Notifications.Enabled = *user.Notifications.Enabled
	}
}

// LauncherArgs returns the configured extra arguments for a selector.
func (c *Config) LauncherArgs(name string) []string {
	switch name {
	case "dmenu":
		return c.Launchers.Dmenu.Args
	case "rofi":
		return c.Launchers.Rofi.Args
	case "fzf":
		return c.Launchers.Fzf.Args
	case "bemenu":
		return c.Launchers.Bemenu.Args
	case "fuzzel":
		return c.Launchers.Fuzzel.Args
	default:
		return nil
	}
}

// InitUserConfig writes the embedded defaults to the user config path
// so they can be edited. An existing file is left alone.
func InitUserConfig() error {
	return writeDefaultConfig(UserConfigPath())
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigData), 0o644)
}

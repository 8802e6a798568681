// Package config loads the few run-time settings freshfetch has. Values are
// layered: built-in defaults, then freshfetch.toml in the configuration
// directory, then FRESHFETCH_* environment variables, then command-line
// flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"freshfetch/errors"
	"freshfetch/sysinfo"
)

const (
	// AppName is the directory name under the XDG config home.
	AppName = "freshfetch"

	// FileName is the optional settings file inside the config directory.
	FileName = "freshfetch.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "FRESHFETCH_"

	InfoTemplate   = "info.lua"
	ArtTemplate    = "art.lua"
	LayoutTemplate = "layout.lua"
)

// Config holds the resolved settings.
type Config struct {
	// ConfigDir holds the override templates and freshfetch.toml.
	ConfigDir string `koanf:"config_dir"`

	// Logo forces a built-in logo instead of the detected distribution's.
	Logo string `koanf:"logo"`

	Verbosity int `koanf:"verbosity"`

	// Shells maps a shell name to the command printing its version.
	Shells map[string][]string `koanf:"shells"`
}

// DefaultDir returns $XDG_CONFIG_HOME/freshfetch.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// InfoPath is the override for the info panel template.
func (c *Config) InfoPath() string { return filepath.Join(c.ConfigDir, InfoTemplate) }

// ArtPath is the override for the art template.
func (c *Config) ArtPath() string { return filepath.Join(c.ConfigDir, ArtTemplate) }

// LayoutPath is the override for the top-level layout template.
func (c *Config) LayoutPath() string { return filepath.Join(c.ConfigDir, LayoutTemplate) }

// Load resolves the configuration. flags holds command-line values keyed
// like the koanf tags of Config; only flags the user actually set should be
// present.
func Load(flags map[string]interface{}) (*Config, error) {
	// The config directory itself can come from env or flags, so it is
	// resolved before the settings file is looked up.
	pre := koanf.New(".")
	if err := loadLayers(pre, "", flags); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := loadLayers(k, filepath.Join(pre.String("config_dir"), FileName), flags); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func loadLayers(k *koanf.Koanf, configFile string, flags map[string]interface{}) error {
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to load defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return errors.Wrapf(err, errors.ErrConfig, "failed to load config from %s", configFile)
			}
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return errors.Wrap(err, errors.ErrConfig, "failed to load flags")
		}
	}
	return nil
}

func defaults() map[string]interface{} {
	shells := make(map[string]interface{})
	for name, cmd := range sysinfo.DefaultShellVersions() {
		shells[name] = cmd
	}
	return map[string]interface{}{
		"config_dir": DefaultDir(),
		"logo":       "",
		"verbosity":  0,
		"shells":     shells,
	}
}

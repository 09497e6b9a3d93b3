// Package config provides configuration file parsing for brew-available.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "brew-available"

// brewFileEnv is exported by Homebrew to external commands and points at
// the brew executable that invoked them.
const brewFileEnv = "HOMEBREW_BREW_FILE"

// Config holds settings read from the config file.
type Config struct {
	// Brew is the brew executable. Empty means HOMEBREW_BREW_FILE, then "brew".
	Brew string `yaml:"brew"`
	// InstalledOnly lists installed packages instead of every known package.
	InstalledOnly bool `yaml:"installed_only"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Dir returns the brew-available config directory, respecting XDG_CONFIG_HOME.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the YAML config at path. A missing file yields the defaults
// without an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withDefaults(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg.withDefaults(), nil
}

func (c *Config) withDefaults() *Config {
	if c.Brew == "" {
		c.Brew = os.Getenv(brewFileEnv)
	}
	return c
}

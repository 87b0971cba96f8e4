// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

var (
	// fieldNamePattern matches host machine names for fields.
	fieldNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

	// widthPattern matches iframe widths such as "100%", "640px" or "640".
	widthPattern = regexp.MustCompile(`^[0-9]+(%|px)?$`)
)

// Config holds all application configuration.
type Config struct {
	SourceField string `toml:"source_field"`
	Width       string `toml:"width"`
	IconBase    string `toml:"icon_base"`
	Debug       bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SourceField: "field_smugmug_embed",
		Width:       "100%",
		IconBase:    "public://media-icons/generic",
		Debug:       false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "smugembed"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "smugembed"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path and merges with defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.SourceField == "" {
		return fmt.Errorf("source_field cannot be empty")
	}
	if !fieldNamePattern.MatchString(c.SourceField) {
		return fmt.Errorf("invalid source_field %q (lowercase letters, digits and underscores only)", c.SourceField)
	}

	if !widthPattern.MatchString(c.Width) {
		return fmt.Errorf("invalid width %q (e.g. 100%%, 640px, 640)", c.Width)
	}

	return nil
}

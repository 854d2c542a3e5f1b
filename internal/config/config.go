// Package config provides configuration management for hexofm using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

// AppName is the application name used for config file naming.
const AppName = "hexofm"

// Config represents the top-level configuration structure.
// It holds the defaults applied when writing documents back out.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// Mode is the default stringify grammar: "yaml" or "json".
	Mode string `mapstructure:"mode" yaml:"mode"`

	// Separator overrides the fence token. Empty selects the grammar default.
	Separator string `mapstructure:"separator" yaml:"separator"`

	// Prefix emits the leading fence (legacy wrapped form) by default.
	Prefix bool `mapstructure:"prefix" yaml:"prefix"`

	// Indent is the YAML encoder indentation width.
	Indent int `mapstructure:"indent" yaml:"indent"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("HEXOFM")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("mode", "yaml")
	viper.SetDefault("indent", 2)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Options translates the configuration into stringify options.
func (c *Config) Options() frontmatter.Options {
	return frontmatter.Options{
		Mode:      c.Mode,
		Separator: c.Separator,
		Prefix:    c.Prefix,
		Indent:    c.Indent,
	}
}

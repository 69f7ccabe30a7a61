// Package config provides configuration management for skillref using Viper.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/paths"
)

// DefaultMaxContentSize is the maximum accepted skill document size in bytes.
// Size enforcement is a CLI concern; the parser itself is size-agnostic.
const DefaultMaxContentSize = 1_000_000

// Config represents the top-level configuration structure.
type Config struct {
	// MaxContentSize bounds skill document input, in bytes.
	MaxContentSize int `mapstructure:"max_content_size" yaml:"max_content_size"`

	// OutputFormat is the default output format for commands (text, json).
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`

	// LogFormat is the default log format (text, json).
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Init initializes Viper with skillref defaults. Call once at startup before
// reading config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths, in order of precedence.
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigHome())

	viper.SetEnvPrefix("SKILLREF")
	viper.AutomaticEnv()

	viper.SetDefault("max_content_size", DefaultMaxContentSize)
	viper.SetDefault("output_format", "text")
	viper.SetDefault("log_format", "text")
}

// Load reads the configuration file. With a non-empty path it reads that
// exact file; otherwise it searches the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load without a config file uses defaults.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.MaxContentSize <= 0 {
		return errors.Wrapf(skillreferrors.ErrInvalidConfig,
			"max_content_size must be positive, got %d", c.MaxContentSize)
	}
	switch c.OutputFormat {
	case "text", "json":
	default:
		return errors.Wrapf(skillreferrors.ErrInvalidConfig,
			"output_format must be text or json, got %q", c.OutputFormat)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Wrapf(skillreferrors.ErrInvalidConfig,
			"log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

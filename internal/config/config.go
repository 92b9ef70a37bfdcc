// Package config provides configuration management (file + env).
package config

import (
	"strings"

	"github.com/spf13/viper"

	"creator-rates/internal/errors"
	"creator-rates/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Server contains API server settings
	Server ServerConfig `mapstructure:"server"`

	// Output contains CLI output settings
	Output OutputConfig `mapstructure:"output"`

	// Logging contains logging configuration
	Logging logging.Config `mapstructure:"logging"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `mapstructure:"addr"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writes
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds"`
}

// OutputConfig contains CLI output settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `mapstructure:"default_format"`

	// ShowLayers prints the full layer breakdown
	ShowLayers bool `mapstructure:"show_layers"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowLayers:    true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from an optional file plus RATES_* env
// overrides. A missing file is not an error; env alone can configure
// everything.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("creator-rates")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.creator-rates")
	}

	v.SetEnvPrefix("RATES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing && path != "" {
			return Config{}, errors.Wrap(errors.TypeConfig, "reading config file", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.TypeConfig, "decoding config", err)
	}
	return cfg, nil
}

// Package config provides user configuration for promptpack using Viper.
//
// Configuration values rank below explicit flags and prompt answers in the
// option resolver; they only fill fields nothing else has set.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/promptpack/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// Config represents the user configuration file.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// InstallationType is the preferred default target ("global" or
	// "local"). Empty means the resolver's global fallback applies.
	InstallationType string `mapstructure:"installation_type" yaml:"installation_type"`

	// InstallMode is the preferred default mode ("default" or "custom").
	InstallMode string `mapstructure:"install_mode" yaml:"install_mode"`
}

// Init initializes Viper with config file locations, environment support
// and defaults. Call once at startup before Load.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Dir(paths.ConfigFile()))

	viper.SetEnvPrefix("PROMPTPACK")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("installation_type", "")
	viper.SetDefault("install_mode", "")
}

// Load reads the configuration. If path is empty the default locations are
// searched and a missing file falls back to defaults; an explicit path that
// cannot be read is an error.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

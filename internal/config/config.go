// Package config loads CLI configuration from flags, environment and an
// optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings the CLI needs to talk to the metadata service.
type Config struct {
	APIKey      string
	HTTPTimeout time.Duration
	LogLevel    string
}

// Load reads configuration from VIDSEEK_-prefixed environment variables and
// an optional vidseek.yaml in the working directory or ~/.config/vidseek.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api-key", "")
	v.SetDefault("http-timeout", 30*time.Second)
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix("VIDSEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("vidseek")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/vidseek")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		APIKey:      v.GetString("api-key"),
		HTTPTimeout: v.GetDuration("http-timeout"),
		LogLevel:    v.GetString("log-level"),
	}, nil
}

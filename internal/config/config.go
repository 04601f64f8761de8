// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the service settings, with local-development defaults.
type Config struct {
	Port     string     `env:"PORT" envDefault:"8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"eventease.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

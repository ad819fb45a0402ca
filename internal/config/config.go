// Package config loads application configuration from the environment.
//
// Values come from environment variables (optionally seeded from a .env
// file by main). Struct tags drive the parsing, so adding an option means
// adding a field — no flag plumbing.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// DBPath is the SQLite snapshot database. The containing directory is
	// created on startup if missing.
	DBPath string `env:"TOPLANA_DB" envDefault:"data/toplana.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"TOPLANA_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level string onto slog's levels.
// Unknown values fall back to info rather than failing startup.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

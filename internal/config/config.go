// Package config loads scorekeeper server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup
type Config struct {
	Host            string        `env:"SCOREKEEPER_HOST"`
	Port            int           `env:"SCOREKEEPER_PORT"             envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SCOREKEEPER_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SCOREKEEPER_WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SCOREKEEPER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Storage is one of memory, redis, sqlite or nop
	Storage string `env:"SCOREKEEPER_STORAGE" envDefault:"memory"`

	RedisURL       string        `env:"SCOREKEEPER_REDIS_URL"       envDefault:"redis://localhost:6379"`
	RedisNamespace string        `env:"SCOREKEEPER_REDIS_NAMESPACE" envDefault:"default"`
	RedisMatchTTL  time.Duration `env:"SCOREKEEPER_REDIS_MATCH_TTL" envDefault:"0s"`

	SQLitePath string `env:"SCOREKEEPER_SQLITE_PATH" envDefault:"scorekeeper.db"`

	LogLevel  string `env:"SCOREKEEPER_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SCOREKEEPER_LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set take precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads Config from the environment only
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("parse env: SCOREKEEPER_PORT %d out of range", cfg.Port)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

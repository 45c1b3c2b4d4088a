package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store selects the persona storage backend
type Store string

const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
	StoreSQLite Store = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Store    Store  `env:"PERSONAS_STORE" envDefault:"memory"`
	LogLevel string `env:"LOG_LEVEL"      envDefault:"info"`

	// RestoreTTL is how long a shared restore spec stays redeemable
	RestoreTTL time.Duration `env:"RESTORE_TTL" envDefault:"24h"`

	Redis  RedisConfig
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"personas.db"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Store = Store(strings.ToLower(strings.TrimSpace(string(cfg.Store))))
	switch cfg.Store {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return nil, fmt.Errorf("PERSONAS_STORE must be memory, redis or sqlite, got %q", cfg.Store)
	}
	if cfg.RestoreTTL <= 0 {
		return nil, fmt.Errorf("RESTORE_TTL must be positive, got %s", cfg.RestoreTTL)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level parses LogLevel into a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

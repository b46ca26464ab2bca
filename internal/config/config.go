package config

import (
	"github.com/caarlos0/env/v11"

	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig `envPrefix:"REDIS_"`
	Catalog CatalogConfig
}

// RedisConfig holds Redis-specific configuration. When Addr is empty the
// application falls back to the in-memory repositories.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// CatalogConfig points at an optional YAML dungeon catalog. When Path is
// empty the compiled-in default catalog is used.
type CatalogConfig struct {
	Path string `env:"DUNGEON_CATALOG"`
}

// Enabled reports whether a Redis backend is configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, apperr.Wrap(err, "failed to parse environment configuration")
	}
	return &cfg, nil
}

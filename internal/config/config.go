// Package config loads process configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/fennwald/tracker-api/internal/errors"
)

// Config holds everything the tracker needs at startup.
type Config struct {
	// RedisAddr is the host:port of the Redis instance that holds the
	// dashboard snapshot and the refresh token.
	RedisAddr string `env:"TRACKER_REDIS_ADDR" envDefault:"localhost:6379"`

	// AuthURL is the base URL of the remote auth service.
	AuthURL string `env:"TRACKER_AUTH_URL" envDefault:"http://localhost:8080"`

	// RedisPoolSize caps connections to Redis. Zero uses the client
	// default.
	RedisPoolSize int `env:"TRACKER_REDIS_POOL_SIZE" envDefault:"0"`

	// RedisIdleTimeout closes idle connections after this duration.
	RedisIdleTimeout time.Duration `env:"TRACKER_REDIS_IDLE_TIMEOUT" envDefault:"5m"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"TRACKER_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}

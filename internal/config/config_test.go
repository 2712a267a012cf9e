package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwald/tracker-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "http://localhost:8080", cfg.AuthURL)
	assert.Equal(t, 0, cfg.RedisPoolSize)
	assert.Equal(t, 5*time.Minute, cfg.RedisIdleTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TRACKER_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("TRACKER_AUTH_URL", "https://auth.example.com")
	t.Setenv("TRACKER_REDIS_POOL_SIZE", "10")
	t.Setenv("TRACKER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, "https://auth.example.com", cfg.AuthURL)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TRACKER_REDIS_POOL_SIZE", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

package credentials

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/fennwald/tracker-api/internal/errors"
	redisclient "github.com/fennwald/tracker-api/internal/redis"
)

const refreshTokenKey = "tracker:auth:refresh_token"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis credentials repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed credentials repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.RefreshToken == "" {
		return nil, errors.InvalidArgument("refresh token cannot be empty")
	}
	if err := r.client.Set(ctx, refreshTokenKey, input.RefreshToken, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store refresh token")
	}
	return &PutOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, refreshTokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no refresh token stored")
		}
		return nil, errors.Wrapf(err, "failed to read refresh token")
	}
	return &GetOutput{RefreshToken: result}, nil
}

func (r *redisRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	if err := r.client.Del(ctx, refreshTokenKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete refresh token")
	}
	return &DeleteOutput{}, nil
}

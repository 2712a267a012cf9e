package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/errors"
	redisclient "github.com/fennwald/tracker-api/internal/redis"
)

// snapshotKey is the fixed namespace key holding the serialized state.
// The encoding is versionless; a schema change drops old records on load.
const snapshotKey = "tracker:snapshot"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis snapshot repository.
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

// NewRedis creates a new Redis-backed snapshot repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot")
	}

	slog.DebugContext(ctx, "saved dashboard snapshot",
		"key", snapshotKey,
		"parties", len(input.Snapshot.Parties),
		"has_active", input.Snapshot.ActiveParty != nil)

	return &SaveOutput{}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	result, err := r.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No record yet: start from empty defaults, not an error.
			slog.DebugContext(ctx, "no snapshot found, starting empty", "key", snapshotKey)
			return &LoadOutput{Snapshot: &entities.Snapshot{}, Found: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to load snapshot")
	}

	var snap entities.Snapshot
	if err := json.Unmarshal([]byte(result), &snap); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot")
	}

	slog.DebugContext(ctx, "loaded dashboard snapshot",
		"key", snapshotKey,
		"parties", len(snap.Parties),
		"has_active", snap.ActiveParty != nil)

	return &LoadOutput{Snapshot: &snap, Found: true}, nil
}

func (r *redisRepository) Clear(ctx context.Context, _ ClearInput) (*ClearOutput, error) {
	if err := r.client.Del(ctx, snapshotKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear snapshot")
	}
	return &ClearOutput{}, nil
}

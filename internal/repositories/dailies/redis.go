package dailies

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// dailyTTL keeps stale records from accumulating; records are superseded
// daily anyway.
const dailyTTL = 48 * time.Hour

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed daily attempt repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}
	return &redisRepository{client: cfg.Client}
}

func dailyKey(playerID string) string {
	return fmt.Sprintf("daily:%s", playerID)
}

// Get retrieves the stored record for a player
func (r *redisRepository) Get(ctx context.Context, playerID string) (*dungeon.DailyResetInfo, error) {
	data, err := r.client.Get(ctx, dailyKey(playerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFound("no daily record for player: " + playerID)
		}
		return nil, apperr.Wrap(err, "failed to get daily record from Redis")
	}

	var info dungeon.DailyResetInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal daily record")
	}
	return &info, nil
}

// Put stores or replaces the record for a player
func (r *redisRepository) Put(ctx context.Context, info *dungeon.DailyResetInfo) error {
	if info == nil {
		return apperr.InvalidArgument("daily reset info cannot be nil")
	}
	if info.PlayerID == "" {
		return apperr.InvalidArgument("player ID cannot be empty")
	}

	data, err := json.Marshal(info)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal daily record")
	}

	if err := r.client.Set(ctx, dailyKey(info.PlayerID), data, dailyTTL).Err(); err != nil {
		return apperr.Wrap(err, "failed to store daily record in Redis")
	}
	return nil
}

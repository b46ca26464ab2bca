package runs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis. Runs are JSON values
// under run:{id} with a per-player index set.
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed run repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}
	return &redisRepository{client: cfg.Client}
}

func runKey(runID string) string {
	return fmt.Sprintf("run:%s", runID)
}

func playerRunsKey(playerID string) string {
	return fmt.Sprintf("player:%s:runs", playerID)
}

// Create registers a new active run
func (r *redisRepository) Create(ctx context.Context, run *dungeon.Run) error {
	if run == nil {
		return apperr.InvalidArgument("run cannot be nil")
	}
	if run.RunID == "" {
		return apperr.InvalidArgument("run ID cannot be empty")
	}

	data, err := json.Marshal(run)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal run")
	}

	if err := r.client.Set(ctx, runKey(run.RunID), data, 0).Err(); err != nil {
		return apperr.Wrap(err, "failed to store run in Redis")
	}
	if err := r.client.SAdd(ctx, playerRunsKey(run.PlayerID), run.RunID).Err(); err != nil {
		return apperr.Wrap(err, "failed to index run in Redis")
	}
	return nil
}

// Get retrieves an active run by ID
func (r *redisRepository) Get(ctx context.Context, runID string) (*dungeon.Run, error) {
	data, err := r.client.Get(ctx, runKey(runID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFound("run not found: " + runID)
		}
		return nil, apperr.Wrap(err, "failed to get run from Redis")
	}

	var run dungeon.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal run")
	}
	return &run, nil
}

// Delete removes a run from the active set
func (r *redisRepository) Delete(ctx context.Context, runID string) error {
	run, err := r.Get(ctx, runID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, runKey(runID))
	pipe.SRem(ctx, playerRunsKey(run.PlayerID), runID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrap(err, "failed to delete run from Redis")
	}
	return nil
}

// ListByPlayer retrieves all active runs for a player
func (r *redisRepository) ListByPlayer(ctx context.Context, playerID string) ([]*dungeon.Run, error) {
	runIDs, err := r.client.SMembers(ctx, playerRunsKey(playerID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list player runs from Redis")
	}

	runs := make([]*dungeon.Run, len(runIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range runIDs {
		i, id := i, id
		g.Go(func() error {
			run, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}

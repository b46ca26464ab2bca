package dailies

import (
	"context"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
)

// Repository defines storage for per-player daily dungeon attempt records.
// One record exists per player; the dungeon service replaces it wholesale
// when the calendar date rolls over.
type Repository interface {
	// Get retrieves the stored record for a player. Returns a not-found
	// error when the player has no record yet.
	Get(ctx context.Context, playerID string) (*dungeon.DailyResetInfo, error)

	// Put stores or replaces the record for a player
	Put(ctx context.Context, info *dungeon.DailyResetInfo) error
}

package runs

import (
	"context"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
)

// Repository defines storage for active dungeon runs. Runs leave the store
// when they reach a terminal state.
type Repository interface {
	// Create registers a new active run
	Create(ctx context.Context, run *dungeon.Run) error

	// Get retrieves an active run by ID
	Get(ctx context.Context, runID string) (*dungeon.Run, error)

	// Delete removes a run from the active set
	Delete(ctx context.Context, runID string) error

	// ListByPlayer retrieves all active runs for a player
	ListByPlayer(ctx context.Context, playerID string) ([]*dungeon.Run, error)
}

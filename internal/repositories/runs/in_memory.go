package runs

import (
	"context"
	"sync"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]*dungeon.Run
}

// NewInMemoryRepository creates a new in-memory run repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		runs: make(map[string]*dungeon.Run),
	}
}

// Create registers a new active run
func (r *inMemoryRepository) Create(ctx context.Context, run *dungeon.Run) error {
	if run == nil {
		return apperr.InvalidArgument("run cannot be nil")
	}
	if run.RunID == "" {
		return apperr.InvalidArgument("run ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.RunID]; exists {
		return apperr.AlreadyExists("run already exists: " + run.RunID)
	}

	// Copy to avoid external modifications
	runCopy := *run
	r.runs[run.RunID] = &runCopy
	return nil
}

// Get retrieves an active run by ID
func (r *inMemoryRepository) Get(ctx context.Context, runID string) (*dungeon.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[runID]
	if !exists {
		return nil, apperr.NotFound("run not found: " + runID)
	}

	runCopy := *run
	return &runCopy, nil
}

// Delete removes a run from the active set
func (r *inMemoryRepository) Delete(ctx context.Context, runID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[runID]; !exists {
		return apperr.NotFound("run not found: " + runID)
	}

	delete(r.runs, runID)
	return nil
}

// ListByPlayer retrieves all active runs for a player
func (r *inMemoryRepository) ListByPlayer(ctx context.Context, playerID string) ([]*dungeon.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var runs []*dungeon.Run
	for _, run := range r.runs {
		if run.PlayerID == playerID {
			runCopy := *run
			runs = append(runs, &runCopy)
		}
	}
	return runs, nil
}

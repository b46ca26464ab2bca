package dailies

import (
	"context"
	"sync"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*dungeon.DailyResetInfo
}

// NewInMemoryRepository creates a new in-memory daily attempt repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		records: make(map[string]*dungeon.DailyResetInfo),
	}
}

// Get retrieves the stored record for a player
func (r *inMemoryRepository) Get(ctx context.Context, playerID string) (*dungeon.DailyResetInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.records[playerID]
	if !exists {
		return nil, apperr.NotFound("no daily record for player: " + playerID)
	}
	return copyInfo(info), nil
}

// Put stores or replaces the record for a player
func (r *inMemoryRepository) Put(ctx context.Context, info *dungeon.DailyResetInfo) error {
	if info == nil {
		return apperr.InvalidArgument("daily reset info cannot be nil")
	}
	if info.PlayerID == "" {
		return apperr.InvalidArgument("player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[info.PlayerID] = copyInfo(info)
	return nil
}

func copyInfo(info *dungeon.DailyResetInfo) *dungeon.DailyResetInfo {
	infoCopy := *info
	infoCopy.DungeonAttempts = make(map[string]int, len(info.DungeonAttempts))
	for dungeonID, attempts := range info.DungeonAttempts {
		infoCopy.DungeonAttempts[dungeonID] = attempts
	}
	return &infoCopy
}

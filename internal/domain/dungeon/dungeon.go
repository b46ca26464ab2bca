package dungeon

import (
	"time"

	"github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// Difficulty is a dungeon difficulty tier
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyNightmare Difficulty = "nightmare"
)

// ParseDifficulty validates a wire value and returns the matching Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyNightmare:
		return Difficulty(s), nil
	}
	return "", apperr.InvalidArgumentf("unknown dungeon difficulty: %q", s)
}

// Dungeon is a static dungeon configuration
type Dungeon struct {
	ID               string             `json:"dungeon_id" yaml:"dungeon_id"`
	Name             string             `json:"name" yaml:"name"`
	Description      string             `json:"description" yaml:"description"`
	Difficulty       Difficulty         `json:"difficulty" yaml:"difficulty"`
	LevelRequirement int                `json:"level_requirement" yaml:"level_requirement"`
	EntryCost        int                `json:"entry_cost" yaml:"entry_cost"`
	Floors           int                `json:"floors" yaml:"floors"`
	DailyResetCount  int                `json:"daily_reset_count" yaml:"daily_reset_count"`
	RewardMultiplier float64            `json:"reward_multiplier" yaml:"reward_multiplier"`
	MonsterTiers     []loot.MonsterTier `json:"monster_tiers" yaml:"monster_tiers"`
}

// Validate checks a dungeon configuration at load time
func (d *Dungeon) Validate() error {
	if d.ID == "" {
		return apperr.Validation("dungeon id is required")
	}
	if _, err := ParseDifficulty(string(d.Difficulty)); err != nil {
		return err
	}
	if d.Floors <= 0 {
		return apperr.Validationf("dungeon %s: floors must be positive", d.ID)
	}
	if d.EntryCost < 0 {
		return apperr.Validationf("dungeon %s: entry cost cannot be negative", d.ID)
	}
	if d.DailyResetCount <= 0 {
		return apperr.Validationf("dungeon %s: daily reset count must be positive", d.ID)
	}
	for _, tier := range d.MonsterTiers {
		if _, err := loot.ParseMonsterTier(string(tier)); err != nil {
			return err
		}
	}
	return nil
}

// Run is one player's pass through a dungeon, from entry to completion
type Run struct {
	RunID           string                 `json:"run_id"`
	PlayerID        string                 `json:"player_id"`
	DungeonID       string                 `json:"dungeon_id"`
	Difficulty      Difficulty             `json:"difficulty"`
	StartTime       time.Time              `json:"start_time"`
	EndTime         *time.Time             `json:"end_time,omitempty"`
	Completed       bool                   `json:"completed"`
	FloorsCompleted int                    `json:"floors_completed"`
	TotalFloors     int                    `json:"total_floors"`
	RewardsEarned   []*equipment.Equipment `json:"rewards_earned"`
	CurrencyEarned  int                    `json:"currency_earned"`
	EntryCost       int                    `json:"entry_cost"`
}

// DailyResetInfo tracks per-dungeon attempts for one player on one calendar
// day. Date is a UTC date string (2006-01-02); a new day replaces the record
// wholesale.
type DailyResetInfo struct {
	PlayerID        string         `json:"player_id"`
	Date            string         `json:"date"`
	DungeonAttempts map[string]int `json:"dungeon_attempts"`
}

// NewDailyResetInfo creates a fresh record for the given day
func NewDailyResetInfo(playerID, date string) *DailyResetInfo {
	return &DailyResetInfo{
		PlayerID:        playerID,
		Date:            date,
		DungeonAttempts: make(map[string]int),
	}
}

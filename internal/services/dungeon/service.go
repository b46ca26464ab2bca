package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=mockdungeon -source=service.go

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domaincombat "github.com/KirkDiggler/combat-arena/internal/domain/combat"
	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	"github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
	"github.com/KirkDiggler/combat-arena/internal/repositories/dailies"
	"github.com/KirkDiggler/combat-arena/internal/repositories/runs"
	combatsvc "github.com/KirkDiggler/combat-arena/internal/services/combat"
	lootsvc "github.com/KirkDiggler/combat-arena/internal/services/loot"
	"github.com/KirkDiggler/combat-arena/internal/services/monster"
	"github.com/KirkDiggler/combat-arena/internal/uuid"
)

// partialRefundRatio of the entry cost is refunded pro rata on an abandoned run
const partialRefundRatio = 0.3

// dateLayout formats the UTC calendar date used for daily attempt tracking
const dateLayout = "2006-01-02"

// Service defines the dungeon management interface
type Service interface {
	// ListDungeons returns the full dungeon catalog
	ListDungeons(ctx context.Context) []*dungeon.Dungeon

	// GetDungeon retrieves a dungeon configuration by ID
	GetDungeon(ctx context.Context, dungeonID string) (*dungeon.Dungeon, error)

	// CanEnter checks entry requirements. Failing a requirement is a normal
	// outcome reported in the result, not an error.
	CanEnter(ctx context.Context, input *CanEnterInput) (*Eligibility, error)

	// StartRun validates entry, charges the entry cost, counts the daily
	// attempt, and registers an active run. Precondition failures return a
	// nil run with an explanatory message.
	StartRun(ctx context.Context, input *StartRunInput) (*StartRunOutput, error)

	// CompleteRun finalizes an active run: full completion pays loot rolled
	// per monster tier, partial completion refunds part of the entry cost.
	// The run leaves the active set either way.
	CompleteRun(ctx context.Context, input *CompleteRunInput) (*CompleteRunOutput, error)

	// AttemptsRemaining reports how many entries the player has left today
	AttemptsRemaining(ctx context.Context, playerID, dungeonID string) (int, error)

	// ListPlayerRuns returns the player's active runs
	ListPlayerRuns(ctx context.Context, playerID string) ([]*dungeon.Run, error)

	// SimulateDungeonCombat fights floor by floor and stops at the first loss
	SimulateDungeonCombat(ctx context.Context, input *SimulateDungeonInput) (*DungeonCombatResult, error)
}

// CanEnterInput carries everything the eligibility check needs
type CanEnterInput struct {
	PlayerID       string
	DungeonID      string
	PlayerLevel    int
	PlayerCurrency int
}

// Eligibility is the outcome of an entry check
type Eligibility struct {
	Allowed bool
	Reason  string
}

// StartRunInput carries the player state needed to begin a run. Inventory is
// mutated in place (entry cost deduction).
type StartRunInput struct {
	PlayerID  string
	DungeonID string
	Character *domaincombat.Character
	Inventory *equipment.PlayerInventory
}

// StartRunOutput holds the created run, or a nil run plus the reason entry
// was refused
type StartRunOutput struct {
	Run     *dungeon.Run
	Message string
}

// CompleteRunInput finalizes a run. FloorsCompleted nil means all floors.
// Inventory is mutated in place (rewards or refund).
type CompleteRunInput struct {
	RunID           string
	Inventory       *equipment.PlayerInventory
	LootTables      map[string]*loot.Table
	FloorsCompleted *int
}

// CompleteRunOutput holds the finalized run and a status message
type CompleteRunOutput struct {
	Run     *dungeon.Run
	Message string
}

// SimulateDungeonInput drives a floor-by-floor combat simulation
type SimulateDungeonInput struct {
	Character *domaincombat.Character
	Floors    int
	Seed      *int64
}

// DungeonCombatResult reports whether the player cleared every floor, with
// the per-floor combat logs
type DungeonCombatResult struct {
	Success bool
	Logs    []*domaincombat.Log
}

type service struct {
	dungeons      map[string]*dungeon.Dungeon
	order         []string
	runRepository runs.Repository
	dailyRepo     dailies.Repository
	lootService   lootsvc.Service
	combatService combatsvc.Service
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog       []*dungeon.Dungeon // Optional; defaults to DefaultCatalog
	RunRepository runs.Repository    // Required
	DailyRepo     dailies.Repository // Required
	LootService   lootsvc.Service    // Required
	CombatService combatsvc.Service  // Required
	UUIDGenerator uuid.Generator     // Optional
	Now           func() time.Time   // Optional; for tests
}

// NewService creates a new dungeon service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.RunRepository == nil {
		panic("run repository is required")
	}
	if cfg.DailyRepo == nil {
		panic("daily repository is required")
	}
	if cfg.LootService == nil {
		panic("loot service is required")
	}
	if cfg.CombatService == nil {
		panic("combat service is required")
	}

	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}

	svc := &service{
		dungeons:      make(map[string]*dungeon.Dungeon, len(catalog)),
		runRepository: cfg.RunRepository,
		dailyRepo:     cfg.DailyRepo,
		lootService:   cfg.LootService,
		combatService: cfg.CombatService,
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		now:           time.Now,
	}
	for _, d := range catalog {
		svc.dungeons[d.ID] = d
		svc.order = append(svc.order, d.ID)
	}
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	}
	if cfg.Now != nil {
		svc.now = cfg.Now
	}
	return svc
}

// ListDungeons implements Service.ListDungeons
func (s *service) ListDungeons(ctx context.Context) []*dungeon.Dungeon {
	dungeons := make([]*dungeon.Dungeon, 0, len(s.order))
	for _, id := range s.order {
		dungeons = append(dungeons, s.dungeons[id])
	}
	return dungeons
}

// GetDungeon implements Service.GetDungeon
func (s *service) GetDungeon(ctx context.Context, dungeonID string) (*dungeon.Dungeon, error) {
	if dungeonID == "" {
		return nil, apperr.InvalidArgument("dungeon ID is required")
	}
	d, ok := s.dungeons[dungeonID]
	if !ok {
		return nil, apperr.NotFound("dungeon not found: " + dungeonID)
	}
	return d, nil
}

// CanEnter implements Service.CanEnter
func (s *service) CanEnter(ctx context.Context, input *CanEnterInput) (*Eligibility, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	d, ok := s.dungeons[input.DungeonID]
	if !ok {
		return &Eligibility{Allowed: false, Reason: "Dungeon not found"}, nil
	}

	if input.PlayerLevel < d.LevelRequirement {
		return &Eligibility{
			Allowed: false,
			Reason:  fmt.Sprintf("Level requirement not met (need %d)", d.LevelRequirement),
		}, nil
	}

	if input.PlayerCurrency < d.EntryCost {
		return &Eligibility{
			Allowed: false,
			Reason:  fmt.Sprintf("Insufficient currency (need %d)", d.EntryCost),
		}, nil
	}

	info, err := s.dailyInfo(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	attempts := info.DungeonAttempts[input.DungeonID]
	if attempts >= d.DailyResetCount {
		return &Eligibility{
			Allowed: false,
			Reason:  fmt.Sprintf("Daily attempts exhausted (%d/%d)", attempts, d.DailyResetCount),
		}, nil
	}

	return &Eligibility{Allowed: true, Reason: "Can enter dungeon"}, nil
}

// StartRun implements Service.StartRun
func (s *service) StartRun(ctx context.Context, input *StartRunInput) (*StartRunOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Character == nil || input.Inventory == nil {
		return nil, apperr.InvalidArgument("character and inventory are required")
	}

	eligibility, err := s.CanEnter(ctx, &CanEnterInput{
		PlayerID:       input.PlayerID,
		DungeonID:      input.DungeonID,
		PlayerLevel:    input.Character.Level,
		PlayerCurrency: input.Inventory.Currency,
	})
	if err != nil {
		return nil, err
	}
	if !eligibility.Allowed {
		return &StartRunOutput{Message: eligibility.Reason}, nil
	}

	d := s.dungeons[input.DungeonID]
	run := &dungeon.Run{
		RunID:       s.uuidGenerator.New(),
		PlayerID:    input.PlayerID,
		DungeonID:   input.DungeonID,
		Difficulty:  d.Difficulty,
		StartTime:   s.now(),
		TotalFloors: d.Floors,
		EntryCost:   d.EntryCost,
	}

	if err := s.runRepository.Create(ctx, run); err != nil {
		return nil, apperr.Wrap(err, "failed to register dungeon run")
	}

	info, err := s.dailyInfo(ctx, input.PlayerID)
	if err == nil {
		info.DungeonAttempts[input.DungeonID]++
		err = s.dailyRepo.Put(ctx, info)
	}
	if err != nil {
		// Keep shared state consistent: a run without a counted attempt
		// would bypass the quota
		_ = s.runRepository.Delete(ctx, run.RunID)
		return nil, apperr.Wrap(err, "failed to record daily attempt")
	}

	input.Inventory.Currency -= d.EntryCost

	return &StartRunOutput{Run: run, Message: "Dungeon run started"}, nil
}

// CompleteRun implements Service.CompleteRun
func (s *service) CompleteRun(ctx context.Context, input *CompleteRunInput) (*CompleteRunOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Inventory == nil {
		return nil, apperr.InvalidArgument("inventory is required")
	}

	run, err := s.runRepository.Get(ctx, input.RunID)
	if err != nil {
		return nil, err
	}

	d, ok := s.dungeons[run.DungeonID]
	if !ok {
		return nil, apperr.NotFound("dungeon not found: " + run.DungeonID)
	}

	endTime := s.now()
	run.EndTime = &endTime
	run.FloorsCompleted = d.Floors
	if input.FloorsCompleted != nil {
		run.FloorsCompleted = *input.FloorsCompleted
	}
	run.Completed = run.FloorsCompleted >= d.Floors

	var message string
	if run.Completed {
		rewards, currency, err := s.completionRewards(ctx, d, input.LootTables)
		if err != nil {
			return nil, err
		}
		run.RewardsEarned = rewards
		run.CurrencyEarned = currency

		for _, item := range rewards {
			input.Inventory.Add(item)
		}
		input.Inventory.Currency += currency

		message = fmt.Sprintf("Dungeon completed! Earned %d items and %d currency", len(rewards), currency)
	} else {
		refund := int(float64(run.EntryCost) * partialRefundRatio * float64(run.FloorsCompleted) / float64(d.Floors))
		run.CurrencyEarned = refund
		input.Inventory.Currency += refund
		message = fmt.Sprintf("Dungeon run ended early. Refunded %d currency", refund)
	}

	// Terminal state: the run leaves the active set in both outcomes
	if err := s.runRepository.Delete(ctx, run.RunID); err != nil {
		return nil, apperr.Wrap(err, "failed to retire dungeon run")
	}

	return &CompleteRunOutput{Run: run, Message: message}, nil
}

// AttemptsRemaining implements Service.AttemptsRemaining
func (s *service) AttemptsRemaining(ctx context.Context, playerID, dungeonID string) (int, error) {
	d, ok := s.dungeons[dungeonID]
	if !ok {
		return 0, apperr.NotFound("dungeon not found: " + dungeonID)
	}

	info, err := s.dailyInfo(ctx, playerID)
	if err != nil {
		return 0, err
	}

	remaining := d.DailyResetCount - info.DungeonAttempts[dungeonID]
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// ListPlayerRuns implements Service.ListPlayerRuns
func (s *service) ListPlayerRuns(ctx context.Context, playerID string) ([]*dungeon.Run, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}
	return s.runRepository.ListByPlayer(ctx, playerID)
}

// SimulateDungeonCombat implements Service.SimulateDungeonCombat
func (s *service) SimulateDungeonCombat(ctx context.Context, input *SimulateDungeonInput) (*DungeonCombatResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Character == nil {
		return nil, apperr.InvalidArgument("character is required")
	}
	if input.Floors <= 0 {
		return nil, apperr.InvalidArgument("floors must be positive")
	}

	result := &DungeonCombatResult{}
	for floor := 1; floor <= input.Floors; floor++ {
		tier := tierForFloor(floor, input.Floors)
		opponent := monster.GenerateForTier(tier, floor)

		var seed *int64
		if input.Seed != nil {
			// Derive a distinct deterministic seed per floor
			floorSeed := *input.Seed + int64(floor)
			seed = &floorSeed
		}

		log, err := s.combatService.Simulate(ctx, &combatsvc.SimulateInput{
			Player:   input.Character,
			Opponent: opponent,
			Seed:     seed,
		})
		if err != nil {
			return nil, apperr.Wrapf(err, "combat failed on floor %d", floor)
		}
		result.Logs = append(result.Logs, log)

		if log.WinnerID != input.Character.ID {
			return result, nil
		}
	}

	result.Success = true
	return result, nil
}

// tierForFloor maps a floor number to the monster tier fought there
func tierForFloor(floor, totalFloors int) loot.MonsterTier {
	switch {
	case floor == totalFloors:
		return loot.Tier4
	case floor%3 == 0:
		return loot.Tier3
	case floor%2 == 0:
		return loot.Tier2
	default:
		return loot.Tier1
	}
}

// encounterCount returns how many loot rolls a tier contributes for a
// completed dungeon
func encounterCount(tier loot.MonsterTier, floors int) int {
	switch tier {
	case loot.Tier1:
		return floors * 2
	case loot.Tier2:
		return floors
	case loot.Tier3:
		count := floors / 2
		if count < 1 {
			count = 1
		}
		return count
	case loot.Tier4:
		return 1
	}
	return 0
}

// completionRewards rolls loot per configured monster tier and applies the
// dungeon's reward multiplier to the currency total
func (s *service) completionRewards(ctx context.Context, d *dungeon.Dungeon, tables map[string]*loot.Table) ([]*equipment.Equipment, int, error) {
	var rewards []*equipment.Equipment
	totalCurrency := 0

	for _, tier := range d.MonsterTiers {
		tableID := fmt.Sprintf("%s_%s", d.ID, tier)
		table, ok := tables[tableID]
		if !ok {
			slog.Warn("no loot table for tier, skipping", "table", tableID)
			continue
		}

		for i := 0; i < encounterCount(tier, d.Floors); i++ {
			roll, err := s.lootService.RollLoot(ctx, &lootsvc.RollInput{Table: table})
			if err != nil {
				return nil, 0, apperr.Wrapf(err, "loot roll failed for table %s", tableID)
			}
			rewards = append(rewards, roll.Equipment...)
			totalCurrency += roll.Currency
		}
	}

	return rewards, int(float64(totalCurrency) * d.RewardMultiplier), nil
}

// dailyInfo returns today's attempt record for a player, starting a fresh one
// when none exists or the stored record is from an earlier date
func (s *service) dailyInfo(ctx context.Context, playerID string) (*dungeon.DailyResetInfo, error) {
	today := s.now().UTC().Format(dateLayout)

	info, err := s.dailyRepo.Get(ctx, playerID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return dungeon.NewDailyResetInfo(playerID, today), nil
		}
		return nil, err
	}
	if info.Date != today {
		return dungeon.NewDailyResetInfo(playerID, today), nil
	}
	if info.DungeonAttempts == nil {
		info.DungeonAttempts = make(map[string]int)
	}
	return info, nil
}

package dungeon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domaincombat "github.com/KirkDiggler/combat-arena/internal/domain/combat"
	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	"github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
	"github.com/KirkDiggler/combat-arena/internal/repositories/dailies"
	"github.com/KirkDiggler/combat-arena/internal/repositories/runs"
	combatsvc "github.com/KirkDiggler/combat-arena/internal/services/combat"
	mockcombat "github.com/KirkDiggler/combat-arena/internal/services/combat/mock"
	lootsvc "github.com/KirkDiggler/combat-arena/internal/services/loot"
	mockloot "github.com/KirkDiggler/combat-arena/internal/services/loot/mock"
	"github.com/KirkDiggler/combat-arena/internal/uuid"
)

type serviceFixture struct {
	ctrl        *gomock.Controller
	lootService *mockloot.MockService
	combat      *mockcombat.MockService
	runRepo     runs.Repository
	dailyRepo   dailies.Repository
	service     Service
	now         time.Time
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		ctrl:        ctrl,
		lootService: mockloot.NewMockService(ctrl),
		combat:      mockcombat.NewMockService(ctrl),
		runRepo:     runs.NewInMemoryRepository(),
		dailyRepo:   dailies.NewInMemoryRepository(),
		now:         time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewService(&ServiceConfig{
		RunRepository: f.runRepo,
		DailyRepo:     f.dailyRepo,
		LootService:   f.lootService,
		CombatService: f.combat,
		UUIDGenerator: &uuid.FixedGenerator{ID: "run-1"},
		Now:           func() time.Time { return f.now },
	})
	return f
}

func testHero(level int) *domaincombat.Character {
	return &domaincombat.Character{
		ID:        "hero",
		Name:      "Hero",
		Class:     domaincombat.ClassWarrior,
		Element:   domaincombat.ElementFire,
		Level:     level,
		MaxHP:     100,
		CurrentHP: 100,
		Attack:    domaincombat.NewStat(20),
		Defense:   domaincombat.NewStat(10),
		Speed:     domaincombat.NewStat(12),
	}
}

func testInventory(currency int) *equipment.PlayerInventory {
	inventory := equipment.NewPlayerInventory("hero")
	inventory.Currency = currency
	return inventory
}

func TestListDungeons(t *testing.T) {
	f := newServiceFixture(t)

	dungeons := f.service.ListDungeons(context.Background())
	require.Len(t, dungeons, 4)
	assert.Equal(t, "goblin_caves", dungeons[0].ID)
	assert.Equal(t, "dark_forest", dungeons[1].ID)
	assert.Equal(t, "volcanic_fortress", dungeons[2].ID)
	assert.Equal(t, "shadow_realm", dungeons[3].ID)
}

func TestGetDungeon(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	d, err := f.service.GetDungeon(ctx, "goblin_caves")
	require.NoError(t, err)
	assert.Equal(t, "Goblin Caves", d.Name)
	assert.Equal(t, 10, d.EntryCost)

	_, err = f.service.GetDungeon(ctx, "bottomless_pit")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = f.service.GetDungeon(ctx, "")
	assert.Error(t, err)
}

func TestCanEnter(t *testing.T) {
	tests := []struct {
		name        string
		dungeonID   string
		level       int
		currency    int
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "unknown dungeon",
			dungeonID:   "bottomless_pit",
			level:       50,
			currency:    1000,
			wantAllowed: false,
			wantReason:  "Dungeon not found",
		},
		{
			name:        "level too low",
			dungeonID:   "dark_forest",
			level:       3,
			currency:    1000,
			wantAllowed: false,
			wantReason:  "Level requirement not met (need 5)",
		},
		{
			name:        "insufficient currency",
			dungeonID:   "goblin_caves",
			level:       10,
			currency:    5,
			wantAllowed: false,
			wantReason:  "Insufficient currency (need 10)",
		},
		{
			name:        "can enter",
			dungeonID:   "goblin_caves",
			level:       10,
			currency:    100,
			wantAllowed: true,
			wantReason:  "Can enter dungeon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)

			eligibility, err := f.service.CanEnter(context.Background(), &CanEnterInput{
				PlayerID:       "hero",
				DungeonID:      tt.dungeonID,
				PlayerLevel:    tt.level,
				PlayerCurrency: tt.currency,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, eligibility.Allowed)
			assert.Equal(t, tt.wantReason, eligibility.Reason)
		})
	}
}

func TestCanEnter_DailyAttemptsExhausted(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	info := dungeon.NewDailyResetInfo("hero", "2025-06-15")
	info.DungeonAttempts["shadow_realm"] = 1
	require.NoError(t, f.dailyRepo.Put(ctx, info))

	eligibility, err := f.service.CanEnter(ctx, &CanEnterInput{
		PlayerID:       "hero",
		DungeonID:      "shadow_realm",
		PlayerLevel:    20,
		PlayerCurrency: 500,
	})
	require.NoError(t, err)
	assert.False(t, eligibility.Allowed)
	assert.Equal(t, "Daily attempts exhausted (1/1)", eligibility.Reason)
}

func TestCanEnter_AttemptsResetOnNewDay(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// Yesterday's record does not count against today
	info := dungeon.NewDailyResetInfo("hero", "2025-06-14")
	info.DungeonAttempts["shadow_realm"] = 1
	require.NoError(t, f.dailyRepo.Put(ctx, info))

	eligibility, err := f.service.CanEnter(ctx, &CanEnterInput{
		PlayerID:       "hero",
		DungeonID:      "shadow_realm",
		PlayerLevel:    20,
		PlayerCurrency: 500,
	})
	require.NoError(t, err)
	assert.True(t, eligibility.Allowed)
}

func TestStartRun(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	inventory := testInventory(100)

	output, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
		Character: testHero(10),
		Inventory: inventory,
	})
	require.NoError(t, err)
	require.NotNil(t, output.Run)

	assert.Equal(t, "Dungeon run started", output.Message)
	assert.Equal(t, "run-1", output.Run.RunID)
	assert.Equal(t, "goblin_caves", output.Run.DungeonID)
	assert.Equal(t, dungeon.DifficultyEasy, output.Run.Difficulty)
	assert.Equal(t, 5, output.Run.TotalFloors)
	assert.Equal(t, 10, output.Run.EntryCost)
	assert.Equal(t, f.now, output.Run.StartTime)

	// Entry cost deducted, run persisted, attempt counted
	assert.Equal(t, 90, inventory.Currency)

	stored, err := f.runRepo.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "hero", stored.PlayerID)

	remaining, err := f.service.AttemptsRemaining(ctx, "hero", "goblin_caves")
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
}

func TestStartRun_PreconditionFailure(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	inventory := testInventory(5)

	output, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
		Character: testHero(10),
		Inventory: inventory,
	})
	require.NoError(t, err)

	assert.Nil(t, output.Run)
	assert.Equal(t, "Insufficient currency (need 10)", output.Message)
	assert.Equal(t, 5, inventory.Currency)

	_, err = f.runRepo.Get(ctx, "run-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestStartRun_InputValidation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.StartRun(ctx, nil)
	assert.Error(t, err)

	_, err = f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
	})
	assert.Error(t, err)
}

func completionTables(t *testing.T, d *dungeon.Dungeon) map[string]*loot.Table {
	t.Helper()
	tables := make(map[string]*loot.Table)
	for _, tier := range d.MonsterTiers {
		tableID := d.ID + "_" + string(tier)
		tables[tableID] = &loot.Table{TableID: tableID, MonsterTier: tier}
	}
	return tables
}

func TestCompleteRun_FullClear(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	inventory := testInventory(100)

	start, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
		Character: testHero(10),
		Inventory: inventory,
	})
	require.NoError(t, err)
	require.NotNil(t, start.Run)

	d, err := f.service.GetDungeon(ctx, "goblin_caves")
	require.NoError(t, err)
	tables := completionTables(t, d)

	// Goblin Caves has 5 floors: tier 1 rolls floors*2 = 10 encounters,
	// tier 2 rolls floors = 5
	rollsByTable := make(map[string]int)
	f.lootService.EXPECT().
		RollLoot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *lootsvc.RollInput) (*lootsvc.RollResult, error) {
			rollsByTable[input.Table.TableID]++
			return &lootsvc.RollResult{
				Equipment: []*equipment.Equipment{{ItemID: "drop", Slot: equipment.SlotWeapon}},
				Currency:  10,
			}, nil
		}).
		Times(15)

	output, err := f.service.CompleteRun(ctx, &CompleteRunInput{
		RunID:      "run-1",
		Inventory:  inventory,
		LootTables: tables,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, rollsByTable["goblin_caves_tier_1"])
	assert.Equal(t, 5, rollsByTable["goblin_caves_tier_2"])

	assert.True(t, output.Run.Completed)
	assert.Equal(t, 5, output.Run.FloorsCompleted)
	assert.Len(t, output.Run.RewardsEarned, 15)
	assert.Equal(t, 150, output.Run.CurrencyEarned) // 15 * 10 * 1.0
	assert.Equal(t, "Dungeon completed! Earned 15 items and 150 currency", output.Message)

	// Rewards landed in the inventory, run left the active set
	assert.Len(t, inventory.Inventory, 15)
	assert.Equal(t, 240, inventory.Currency) // 100 - 10 entry + 150

	_, err = f.runRepo.Get(ctx, "run-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCompleteRun_RewardMultiplierApplied(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	inventory := testInventory(200)

	start, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "dark_forest",
		Character: testHero(10),
		Inventory: inventory,
	})
	require.NoError(t, err)
	require.NotNil(t, start.Run)

	d, err := f.service.GetDungeon(ctx, "dark_forest")
	require.NoError(t, err)

	// Dark Forest: 8 floors, tier 2 rolls 8, tier 3 rolls 4
	f.lootService.EXPECT().
		RollLoot(gomock.Any(), gomock.Any()).
		Return(&lootsvc.RollResult{Currency: 5}, nil).
		Times(12)

	output, err := f.service.CompleteRun(ctx, &CompleteRunInput{
		RunID:      "run-1",
		Inventory:  inventory,
		LootTables: completionTables(t, d),
	})
	require.NoError(t, err)

	// 12 * 5 = 60 currency, scaled by the 1.2 multiplier and floored
	assert.Equal(t, 72, output.Run.CurrencyEarned)
}

func TestCompleteRun_MissingTablesAreSkipped(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	inventory := testInventory(100)

	start, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
		Character: testHero(10),
		Inventory: inventory,
	})
	require.NoError(t, err)
	require.NotNil(t, start.Run)

	// Only the tier 1 table is supplied; tier 2 contributes nothing
	tables := map[string]*loot.Table{
		"goblin_caves_tier_1": {TableID: "goblin_caves_tier_1", MonsterTier: loot.Tier1},
	}
	f.lootService.EXPECT().
		RollLoot(gomock.Any(), gomock.Any()).
		Return(&lootsvc.RollResult{Currency: 1}, nil).
		Times(10)

	output, err := f.service.CompleteRun(ctx, &CompleteRunInput{
		RunID:      "run-1",
		Inventory:  inventory,
		LootTables: tables,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, output.Run.CurrencyEarned)
}

func TestCompleteRun_PartialRefund(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	inventory := testInventory(100)

	start, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
		Character: testHero(10),
		Inventory: inventory,
	})
	require.NoError(t, err)
	require.NotNil(t, start.Run)

	floors := 2
	output, err := f.service.CompleteRun(ctx, &CompleteRunInput{
		RunID:           "run-1",
		Inventory:       inventory,
		FloorsCompleted: &floors,
	})
	require.NoError(t, err)

	assert.False(t, output.Run.Completed)
	assert.Equal(t, 2, output.Run.FloorsCompleted)
	// Refund: int(10 * 0.3 * 2/5) = 1
	assert.Equal(t, 1, output.Run.CurrencyEarned)
	assert.Equal(t, "Dungeon run ended early. Refunded 1 currency", output.Message)
	assert.Equal(t, 91, inventory.Currency)
	assert.NotNil(t, output.Run.EndTime)

	_, err = f.runRepo.Get(ctx, "run-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCompleteRun_UnknownRun(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.CompleteRun(context.Background(), &CompleteRunInput{
		RunID:     "missing",
		Inventory: testInventory(0),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAttemptsRemaining(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	remaining, err := f.service.AttemptsRemaining(ctx, "hero", "goblin_caves")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	_, err = f.service.AttemptsRemaining(ctx, "hero", "bottomless_pit")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListPlayerRuns(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.ListPlayerRuns(ctx, "")
	assert.Error(t, err)

	output, err := f.service.StartRun(ctx, &StartRunInput{
		PlayerID:  "hero",
		DungeonID: "goblin_caves",
		Character: testHero(10),
		Inventory: testInventory(100),
	})
	require.NoError(t, err)
	require.NotNil(t, output.Run)

	active, err := f.service.ListPlayerRuns(ctx, "hero")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "run-1", active[0].RunID)
}

func TestSimulateDungeonCombat_FullClear(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	hero := testHero(10)

	var opponents []string
	f.combat.EXPECT().
		Simulate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *combatsvc.SimulateInput) (*domaincombat.Log, error) {
			opponents = append(opponents, input.Opponent.ID)
			return &domaincombat.Log{WinnerID: hero.ID}, nil
		}).
		Times(4)

	result, err := f.service.SimulateDungeonCombat(ctx, &SimulateDungeonInput{
		Character: hero,
		Floors:    4,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Len(t, result.Logs, 4)
	// Floor 1 tier 1, floor 2 tier 2, floor 3 tier 3, final floor tier 4
	assert.Equal(t, []string{
		"monster_tier_1_1",
		"monster_tier_2_2",
		"monster_tier_3_3",
		"monster_tier_4_4",
	}, opponents)
}

func TestSimulateDungeonCombat_StopsAtFirstLoss(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	hero := testHero(10)

	gomock.InOrder(
		f.combat.EXPECT().
			Simulate(gomock.Any(), gomock.Any()).
			Return(&domaincombat.Log{WinnerID: hero.ID}, nil),
		f.combat.EXPECT().
			Simulate(gomock.Any(), gomock.Any()).
			Return(&domaincombat.Log{WinnerID: "monster_tier_2_2"}, nil),
	)

	result, err := f.service.SimulateDungeonCombat(ctx, &SimulateDungeonInput{
		Character: hero,
		Floors:    5,
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Len(t, result.Logs, 2)
}

func TestSimulateDungeonCombat_PerFloorSeeds(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	hero := testHero(10)

	var seeds []int64
	f.combat.EXPECT().
		Simulate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *combatsvc.SimulateInput) (*domaincombat.Log, error) {
			require.NotNil(t, input.Seed)
			seeds = append(seeds, *input.Seed)
			return &domaincombat.Log{WinnerID: hero.ID}, nil
		}).
		Times(3)

	seed := int64(100)
	_, err := f.service.SimulateDungeonCombat(ctx, &SimulateDungeonInput{
		Character: hero,
		Floors:    3,
		Seed:      &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{101, 102, 103}, seeds)
}

func TestSimulateDungeonCombat_InputValidation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.SimulateDungeonCombat(ctx, nil)
	assert.Error(t, err)

	_, err = f.service.SimulateDungeonCombat(ctx, &SimulateDungeonInput{Floors: 3})
	assert.Error(t, err)

	_, err = f.service.SimulateDungeonCombat(ctx, &SimulateDungeonInput{
		Character: testHero(10),
		Floors:    0,
	})
	assert.Error(t, err)
}

func TestNewService_RequiredDependencies(t *testing.T) {
	runRepo := runs.NewInMemoryRepository()
	dailyRepo := dailies.NewInMemoryRepository()
	ctrl := gomock.NewController(t)
	lootService := mockloot.NewMockService(ctrl)
	combatService := mockcombat.NewMockService(ctrl)

	assert.Panics(t, func() { NewService(nil) })
	assert.Panics(t, func() {
		NewService(&ServiceConfig{DailyRepo: dailyRepo, LootService: lootService, CombatService: combatService})
	})
	assert.Panics(t, func() {
		NewService(&ServiceConfig{RunRepository: runRepo, LootService: lootService, CombatService: combatService})
	})
	assert.Panics(t, func() {
		NewService(&ServiceConfig{RunRepository: runRepo, DailyRepo: dailyRepo, CombatService: combatService})
	})
	assert.Panics(t, func() {
		NewService(&ServiceConfig{RunRepository: runRepo, DailyRepo: dailyRepo, LootService: lootService})
	})
}

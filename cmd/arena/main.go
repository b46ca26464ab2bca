package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-arena/internal/config"
	domaincombat "github.com/KirkDiggler/combat-arena/internal/domain/combat"
	domainequip "github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	domainloot "github.com/KirkDiggler/combat-arena/internal/domain/loot"
	"github.com/KirkDiggler/combat-arena/internal/repositories/dailies"
	"github.com/KirkDiggler/combat-arena/internal/repositories/runs"
	combatsvc "github.com/KirkDiggler/combat-arena/internal/services/combat"
	dungeonsvc "github.com/KirkDiggler/combat-arena/internal/services/dungeon"
	equipmentsvc "github.com/KirkDiggler/combat-arena/internal/services/equipment"
	lootsvc "github.com/KirkDiggler/combat-arena/internal/services/loot"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	runRepo := runs.NewInMemoryRepository()
	dailyRepo := dailies.NewInMemoryRepository()

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.Enabled() {
		slog.Info("connecting to Redis", "addr", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr := redisClient.Ping(pingCtx).Err()
		cancel()
		if pingErr != nil {
			slog.Warn("Redis unavailable, falling back to in-memory repositories", "err", pingErr)
			redisClient = nil
		} else {
			slog.Info("connected to Redis, using Redis repositories")
			runRepo = runs.NewRedisRepository(&runs.RedisRepoConfig{Client: redisClient})
			dailyRepo = dailies.NewRedisRepository(&dailies.RedisRepoConfig{Client: redisClient})
		}
	} else {
		slog.Info("REDIS_ADDR not set, using in-memory repositories")
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				slog.Warn("failed to close Redis client", "err", closeErr)
			}
		}()
	}

	catalog := dungeonsvc.DefaultCatalog()
	if cfg.Catalog.Path != "" {
		catalog, err = dungeonsvc.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		slog.Info("loaded dungeon catalog", "path", cfg.Catalog.Path, "dungeons", len(catalog))
	}

	combatService := combatsvc.NewService(&combatsvc.ServiceConfig{})
	equipmentService := equipmentsvc.NewService(&equipmentsvc.ServiceConfig{})
	lootService := lootsvc.NewService(&lootsvc.ServiceConfig{
		EquipmentService: equipmentService,
	})
	dungeonService := dungeonsvc.NewService(&dungeonsvc.ServiceConfig{
		Catalog:       catalog,
		RunRepository: runRepo,
		DailyRepo:     dailyRepo,
		LootService:   lootService,
		CombatService: combatService,
	})

	return runDemo(ctx, combatService, lootService, dungeonService)
}

// runDemo fights one duel, then takes a fresh hero through a full dungeon run
func runDemo(ctx context.Context, combatService combatsvc.Service, lootService lootsvc.Service, dungeonService dungeonsvc.Service) error {
	player := &domaincombat.Character{
		ID:        "player_1",
		Name:      "Aldric",
		Class:     domaincombat.ClassWarrior,
		Element:   domaincombat.ElementFire,
		Level:     12,
		MaxHP:     80,
		CurrentHP: 80,
		Attack:    domaincombat.NewStat(18),
		Defense:   domaincombat.NewStat(12),
		Speed:     domaincombat.NewStat(10),
	}

	opponent := &domaincombat.Character{
		ID:        "opponent_1",
		Name:      "Vex",
		Class:     domaincombat.ClassRogue,
		Element:   domaincombat.ElementWind,
		Level:     12,
		MaxHP:     65,
		CurrentHP: 65,
		Attack:    domaincombat.NewStat(16),
		Defense:   domaincombat.NewStat(9),
		Speed:     domaincombat.NewStat(17),
	}

	combatLog, err := combatService.Simulate(ctx, &combatsvc.SimulateInput{
		Player:   player,
		Opponent: opponent,
	})
	if err != nil {
		return err
	}
	if combatLog.WinnerID == "" {
		slog.Info("duel ended in a draw", "combat", combatLog.CombatID, "turns", combatLog.TotalTurns)
	} else {
		slog.Info("duel finished", "combat", combatLog.CombatID, "winner", combatLog.WinnerID, "turns", combatLog.TotalTurns)
	}

	inventory := domainequip.NewPlayerInventory("player_1")
	inventory.Currency = 500

	dungeonID := "goblin_caves"
	start, err := dungeonService.StartRun(ctx, &dungeonsvc.StartRunInput{
		PlayerID:  "player_1",
		DungeonID: dungeonID,
		Character: player,
		Inventory: inventory,
	})
	if err != nil {
		return err
	}
	if start.Run == nil {
		slog.Info("cannot start run", "reason", start.Message)
		return nil
	}
	slog.Info(start.Message, "run", start.Run.RunID, "floors", start.Run.TotalFloors)

	result, err := dungeonService.SimulateDungeonCombat(ctx, &dungeonsvc.SimulateDungeonInput{
		Character: player,
		Floors:    start.Run.TotalFloors,
	})
	if err != nil {
		return err
	}

	floorsCompleted := len(result.Logs)
	if result.Success {
		slog.Info("cleared every floor", "floors", start.Run.TotalFloors)
	} else {
		floorsCompleted--
		slog.Info("fell during the run", "floor", len(result.Logs), "of", start.Run.TotalFloors)
	}

	d, err := dungeonService.GetDungeon(ctx, dungeonID)
	if err != nil {
		return err
	}
	tables := make(map[string]*domainloot.Table)
	for _, tier := range d.MonsterTiers {
		tableID := d.ID + "_" + string(tier)
		table, tableErr := lootService.DefaultTable(tier, tableID)
		if tableErr != nil {
			return tableErr
		}
		tables[tableID] = table
	}

	complete, err := dungeonService.CompleteRun(ctx, &dungeonsvc.CompleteRunInput{
		RunID:           start.Run.RunID,
		Inventory:       inventory,
		LootTables:      tables,
		FloorsCompleted: &floorsCompleted,
	})
	if err != nil {
		return err
	}
	slog.Info(complete.Message,
		"items", len(inventory.Inventory),
		"currency", inventory.Currency,
	)

	return nil
}

package dungeon

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// DefaultCatalog returns the compiled-in dungeon catalog
func DefaultCatalog() []*dungeon.Dungeon {
	return []*dungeon.Dungeon{
		{
			ID:               "goblin_caves",
			Name:             "Goblin Caves",
			Description:      "Infested caves filled with goblins and their treasures.",
			Difficulty:       dungeon.DifficultyEasy,
			LevelRequirement: 1,
			EntryCost:        10,
			Floors:           5,
			DailyResetCount:  5,
			RewardMultiplier: 1.0,
			MonsterTiers:     []loot.MonsterTier{loot.Tier1, loot.Tier2},
		},
		{
			ID:               "dark_forest",
			Name:             "Dark Forest",
			Description:      "A mysterious forest where dangerous creatures lurk.",
			Difficulty:       dungeon.DifficultyNormal,
			LevelRequirement: 5,
			EntryCost:        25,
			Floors:           8,
			DailyResetCount:  3,
			RewardMultiplier: 1.2,
			MonsterTiers:     []loot.MonsterTier{loot.Tier2, loot.Tier3},
		},
		{
			ID:               "volcanic_fortress",
			Name:             "Volcanic Fortress",
			Description:      "A fortress built in the heart of a volcano, guarded by fire elementals.",
			Difficulty:       dungeon.DifficultyHard,
			LevelRequirement: 10,
			EntryCost:        50,
			Floors:           10,
			DailyResetCount:  2,
			RewardMultiplier: 1.5,
			MonsterTiers:     []loot.MonsterTier{loot.Tier3, loot.Tier4},
		},
		{
			ID:               "shadow_realm",
			Name:             "Shadow Realm",
			Description:      "A realm of pure darkness where only the strongest survive.",
			Difficulty:       dungeon.DifficultyNightmare,
			LevelRequirement: 15,
			EntryCost:        100,
			Floors:           15,
			DailyResetCount:  1,
			RewardMultiplier: 2.0,
			MonsterTiers:     []loot.MonsterTier{loot.Tier4},
		},
	}
}

// LoadCatalog reads a dungeon catalog from a YAML file and validates every
// entry
func LoadCatalog(path string) ([]*dungeon.Dungeon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to read dungeon catalog %s", path)
	}

	var catalog []*dungeon.Dungeon
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, apperr.Wrapf(err, "failed to parse dungeon catalog %s", path)
	}
	if len(catalog) == 0 {
		return nil, apperr.Validationf("dungeon catalog %s is empty", path)
	}

	for _, d := range catalog {
		if err := d.Validate(); err != nil {
			return nil, apperr.Wrapf(err, "invalid dungeon in catalog %s", path)
		}
	}
	return catalog, nil
}

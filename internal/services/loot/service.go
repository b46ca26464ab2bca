package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"

	"github.com/KirkDiggler/combat-arena/internal/dice"
	domainequip "github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
	"github.com/KirkDiggler/combat-arena/internal/services/equipment"
)

// Service defines the loot rolling and table management interface
type Service interface {
	// RollLoot rolls one pass over a loot table and returns the equipment
	// drops and currency. An explicit seed makes the roll reproducible.
	RollLoot(ctx context.Context, input *RollInput) (*RollResult, error)

	// RollLootWithRoller rolls drawing from the caller's roller so one seeded
	// stream can span several rolls.
	RollLootWithRoller(roller dice.Roller, table *loot.Table) (*RollResult, error)

	// DefaultTable builds the stock loot table for a monster tier
	DefaultTable(tier loot.MonsterTier, tableID string) (*loot.Table, error)

	// CustomTable builds a table from caller-supplied entries
	CustomTable(tableID, name string, tier loot.MonsterTier, entries, currencyDrops []loot.Entry) (*loot.Table, error)

	// ValidateTable returns descriptive issues with a table. Advisory: the
	// caller decides whether issues are fatal.
	ValidateTable(table *loot.Table) []string
}

// RollInput carries the table to roll and an optional seed
type RollInput struct {
	Table *loot.Table
	Seed  *int64
}

// RollResult is one roll's combined output
type RollResult struct {
	Equipment []*domainequip.Equipment
	Currency  int
}

// dropCountRange is the inclusive per-roll equipment drop count per tier
var dropCountRange = map[loot.MonsterTier][2]int{
	loot.Tier1: {1, 1},
	loot.Tier2: {1, 2},
	loot.Tier3: {2, 3},
	loot.Tier4: {3, 5},
}

// secondaryRarityWeights drives the rarity roll for entries without one
var secondaryRarityWeights = map[domainequip.Rarity]int{
	domainequip.RarityCommon:    60,
	domainequip.RarityUncommon:  25,
	domainequip.RarityRare:      10,
	domainequip.RarityEpic:      4,
	domainequip.RarityLegendary: 1,
}

// Materialized drops roll a uniform item level in this range
const (
	dropLevelMin = 1
	dropLevelMax = 50
)

type service struct {
	equipmentService equipment.Service
	roller           dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	EquipmentService equipment.Service // Required
	Roller           dice.Roller       // Optional; default stream for unseeded calls
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.EquipmentService == nil {
		panic("equipment service is required")
	}

	svc := &service{
		equipmentService: cfg.EquipmentService,
		roller:           dice.NewRoller(),
	}
	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	}
	return svc
}

// RollLoot implements Service.RollLoot
func (s *service) RollLoot(ctx context.Context, input *RollInput) (*RollResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	roller := s.roller
	if input.Seed != nil {
		roller = dice.NewSeededRoller(*input.Seed)
	}
	return s.RollLootWithRoller(roller, input.Table)
}

// RollLootWithRoller implements Service.RollLootWithRoller
func (s *service) RollLootWithRoller(roller dice.Roller, table *loot.Table) (*RollResult, error) {
	if table == nil {
		return nil, apperr.Validation("loot table cannot be nil")
	}
	if len(table.Entries) == 0 && len(table.CurrencyDrops) == 0 {
		return nil, apperr.Validationf("loot table %s has no entries or currency drops", table.TableID)
	}

	result := &RollResult{}

	// Guaranteed equipment entries always drop
	for _, entry := range table.Entries {
		if !entry.IsGuaranteed {
			continue
		}
		drop, err := s.generateDrop(roller, entry)
		if err != nil {
			return nil, err
		}
		if drop != nil {
			result.Equipment = append(result.Equipment, drop)
		}
	}

	// Currency entries drop on a weight/100 Bernoulli check
	for _, entry := range table.CurrencyDrops {
		if entry.IsGuaranteed || rollChance(roller, entry.Weight) {
			result.Currency += roller.Between(entry.MinQuantity, entry.MaxQuantity)
		}
	}

	// Weighted selection over the non-guaranteed equipment entries
	totalWeight := 0
	for _, entry := range table.Entries {
		if !entry.IsGuaranteed {
			totalWeight += entry.Weight
		}
	}

	if totalWeight > 0 {
		countRange := dropCountRange[table.MonsterTier]
		if countRange == [2]int{} {
			countRange = [2]int{1, 1}
		}
		dropCount := roller.Between(countRange[0], countRange[1])

		for i := 0; i < dropCount; i++ {
			roll := roller.Between(1, totalWeight)
			cumulative := 0
			for _, entry := range table.Entries {
				if entry.IsGuaranteed {
					continue
				}
				cumulative += entry.Weight
				if roll <= cumulative {
					drop, err := s.generateDrop(roller, entry)
					if err != nil {
						return nil, err
					}
					if drop != nil {
						result.Equipment = append(result.Equipment, drop)
					}
					break
				}
			}
		}
	}

	return result, nil
}

// generateDrop materializes a loot entry as a generated item. The slot is
// rolled uniformly regardless of entry configuration, matching the reference
// behavior; entries with neither item id nor rarity produce nothing.
func (s *service) generateDrop(roller dice.Roller, entry loot.Entry) (*domainequip.Equipment, error) {
	if entry.ItemID == "" && entry.Rarity == nil {
		return nil, nil
	}

	slots := domainequip.Slots()
	slot := slots[roller.Intn(len(slots))]

	rarity := domainequip.Rarity("")
	if entry.Rarity != nil {
		rarity = *entry.Rarity
	} else {
		rarity = rollSecondaryRarity(roller)
	}

	itemLevel := roller.Between(dropLevelMin, dropLevelMax)

	return s.equipmentService.GenerateWithRoller(roller, slot, itemLevel, rarity)
}

// rollChance converts an entry weight to a drop probability capped at 1.0
func rollChance(roller dice.Roller, weight int) bool {
	chance := float64(weight) / 100.0
	return roller.Chance(chance)
}

// rollSecondaryRarity rolls rarity for entries that leave it unspecified
func rollSecondaryRarity(roller dice.Roller) domainequip.Rarity {
	total := 0
	for _, rarity := range domainequip.Rarities() {
		total += secondaryRarityWeights[rarity]
	}

	roll := roller.Between(1, total)
	cumulative := 0
	for _, rarity := range domainequip.Rarities() {
		cumulative += secondaryRarityWeights[rarity]
		if roll <= cumulative {
			return rarity
		}
	}
	return domainequip.RarityCommon
}

package equipment

//go:generate mockgen -destination=mock/mock_service.go -package=mockequipment -source=service.go

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/combat-arena/internal/dice"
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
	"github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
	"github.com/KirkDiggler/combat-arena/internal/uuid"
)

// Service defines the procedural equipment generation interface
type Service interface {
	// Generate creates one item. An explicit seed makes the item reproducible.
	Generate(ctx context.Context, input *GenerateInput) (*equipment.Equipment, error)

	// GenerateWithRoller creates one item drawing from the caller's roller,
	// so a seeded loot roll and the items it materializes share one stream.
	GenerateWithRoller(roller dice.Roller, slot equipment.Slot, itemLevel int, rarity equipment.Rarity) (*equipment.Equipment, error)
}

// GenerateInput describes the item to generate. Rarity nil means roll it.
type GenerateInput struct {
	Slot      equipment.Slot
	ItemLevel int
	Rarity    *equipment.Rarity
	Seed      *int64
}

// Name word lists per slot
var (
	weaponPrefixes    = []string{"Iron", "Steel", "Mythril", "Dragon", "Shadow", "Holy", "Arcane"}
	weaponSuffixes    = []string{"Blade", "Sword", "Axe", "Mace", "Dagger", "Staff", "Wand"}
	armorPrefixes     = []string{"Leather", "Chain", "Plate", "Robe", "Scale", "Crystal"}
	armorSuffixes     = []string{"Vest", "Mail", "Armor", "Robes", "Guard", "Shield"}
	accessoryPrefixes = []string{"Ring", "Amulet", "Charm", "Talisman", "Orb"}
	accessorySuffixes = []string{"Power", "Wisdom", "Protection", "Swift", "Might"}
)

// rarityWeights drives the cumulative-weight rarity roll
var rarityWeights = map[equipment.Rarity]int{
	equipment.RarityCommon:    50,
	equipment.RarityUncommon:  30,
	equipment.RarityRare:      15,
	equipment.RarityEpic:      4,
	equipment.RarityLegendary: 1,
}

// affixCountRange is the inclusive affix count range per rarity
var affixCountRange = map[equipment.Rarity][2]int{
	equipment.RarityCommon:    {0, 1},
	equipment.RarityUncommon:  {1, 2},
	equipment.RarityRare:      {2, 3},
	equipment.RarityEpic:      {3, 4},
	equipment.RarityLegendary: {4, 5},
}

// specialProcChance is the special-proc roll probability per rarity
var specialProcChance = map[equipment.Rarity]float64{
	equipment.RarityCommon:    0.0,
	equipment.RarityUncommon:  0.05,
	equipment.RarityRare:      0.15,
	equipment.RarityEpic:      0.30,
	equipment.RarityLegendary: 0.50,
}

// baseStatMultiplier scales base stats per rarity
var baseStatMultiplier = map[equipment.Rarity]float64{
	equipment.RarityCommon:    1.0,
	equipment.RarityUncommon:  1.2,
	equipment.RarityRare:      1.5,
	equipment.RarityEpic:      2.0,
	equipment.RarityLegendary: 2.5,
}

// affixMultiplier scales affix values per rarity
var affixMultiplier = map[equipment.Rarity]float64{
	equipment.RarityCommon:    1.0,
	equipment.RarityUncommon:  1.3,
	equipment.RarityRare:      1.6,
	equipment.RarityEpic:      2.0,
	equipment.RarityLegendary: 2.5,
}

// Special proc descriptions per slot
var (
	weaponProcs = []string{
		"Chance to deal double damage",
		"Lightning strikes on hit",
		"Fire damage over time",
		"Heal on hit",
		"Chance to stun target",
	}
	armorProcs = []string{
		"Thorns damage reflection",
		"Damage reduction on low health",
		"Regeneration in combat",
		"Chance to block attacks",
		"Elemental resistance",
	}
	accessoryProcs = []string{
		"Increased critical chance",
		"Movement speed boost",
		"Bonus experience gain",
		"Currency find bonus",
		"Loot rarity bonus",
	}
)

type service struct {
	uuidGenerator uuid.Generator
	roller        dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	UUIDGenerator uuid.Generator // Optional
	Roller        dice.Roller    // Optional; default stream for unseeded calls
}

// NewService creates a new equipment generation service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		roller:        dice.NewRoller(),
	}
	if cfg != nil {
		if cfg.UUIDGenerator != nil {
			svc.uuidGenerator = cfg.UUIDGenerator
		}
		if cfg.Roller != nil {
			svc.roller = cfg.Roller
		}
	}
	return svc
}

// Generate implements Service.Generate
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*equipment.Equipment, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if _, err := equipment.ParseSlot(string(input.Slot)); err != nil {
		return nil, err
	}
	if input.ItemLevel <= 0 {
		return nil, apperr.InvalidArgument("item level must be positive")
	}

	roller := s.roller
	if input.Seed != nil {
		roller = dice.NewSeededRoller(*input.Seed)
	}

	rarity := equipment.Rarity("")
	if input.Rarity != nil {
		parsed, err := equipment.ParseRarity(string(*input.Rarity))
		if err != nil {
			return nil, err
		}
		rarity = parsed
	} else {
		rarity = rollRarity(roller)
	}

	return s.generate(roller, input.Slot, input.ItemLevel, rarity), nil
}

// GenerateWithRoller implements Service.GenerateWithRoller
func (s *service) GenerateWithRoller(roller dice.Roller, slot equipment.Slot, itemLevel int, rarity equipment.Rarity) (*equipment.Equipment, error) {
	if roller == nil {
		return nil, apperr.InvalidArgument("roller cannot be nil")
	}
	if _, err := equipment.ParseSlot(string(slot)); err != nil {
		return nil, err
	}
	if itemLevel <= 0 {
		return nil, apperr.InvalidArgument("item level must be positive")
	}
	if _, err := equipment.ParseRarity(string(rarity)); err != nil {
		return nil, err
	}
	return s.generate(roller, slot, itemLevel, rarity), nil
}

func (s *service) generate(roller dice.Roller, slot equipment.Slot, itemLevel int, rarity equipment.Rarity) *equipment.Equipment {
	name := generateName(roller, slot, rarity)
	baseStats := generateBaseStats(slot, itemLevel, rarity)

	countRange := affixCountRange[rarity]
	affixCount := roller.Between(countRange[0], countRange[1])
	affixes := generateAffixes(roller, affixCount, itemLevel, rarity)

	specialProc := ""
	if roller.Float64() < specialProcChance[rarity] {
		specialProc = generateSpecialProc(roller, slot)
	}

	levelRequirement := itemLevel - 5
	if levelRequirement < 1 {
		levelRequirement = 1
	}

	return &equipment.Equipment{
		ItemID:           s.uuidGenerator.New(),
		Name:             name,
		Slot:             slot,
		Rarity:           rarity,
		LevelRequirement: levelRequirement,
		BaseStats:        baseStats,
		Affixes:          affixes,
		SpecialProc:      specialProc,
	}
}

// rollRarity rolls rarity from the generation weight table
func rollRarity(roller dice.Roller) equipment.Rarity {
	total := 0
	for _, rarity := range equipment.Rarities() {
		total += rarityWeights[rarity]
	}

	roll := roller.Between(1, total)
	cumulative := 0
	for _, rarity := range equipment.Rarities() {
		cumulative += rarityWeights[rarity]
		if roll <= cumulative {
			return rarity
		}
	}
	return equipment.RarityCommon
}

// generateName builds a prefix+suffix name, interposing the rarity label for
// epic and legendary items
func generateName(roller dice.Roller, slot equipment.Slot, rarity equipment.Rarity) string {
	var prefixes, suffixes []string
	switch slot {
	case equipment.SlotWeapon:
		prefixes, suffixes = weaponPrefixes, weaponSuffixes
	case equipment.SlotArmor:
		prefixes, suffixes = armorPrefixes, armorSuffixes
	default:
		prefixes, suffixes = accessoryPrefixes, accessorySuffixes
	}

	prefix := prefixes[roller.Intn(len(prefixes))]
	suffix := suffixes[roller.Intn(len(suffixes))]

	if rarity == equipment.RarityEpic || rarity == equipment.RarityLegendary {
		label := strings.ToUpper(string(rarity[0])) + string(rarity[1:])
		return fmt.Sprintf("%s %s %s", prefix, label, suffix)
	}
	return fmt.Sprintf("%s %s", prefix, suffix)
}

// generateBaseStats scales base stats by item level and rarity
func generateBaseStats(slot equipment.Slot, itemLevel int, rarity equipment.Rarity) map[string]int {
	baseValue := int(float64(itemLevel) * 2 * baseStatMultiplier[rarity])

	stats := make(map[string]int)
	switch slot {
	case equipment.SlotWeapon:
		stats["attack"] = baseValue
	case equipment.SlotArmor:
		stats["defense"] = baseValue
		stats["hp"] = baseValue / 2
	default:
		// Accessories get smaller balanced stats
		stats["attack"] = baseValue / 3
		stats["defense"] = baseValue / 3
		stats["speed"] = baseValue / 4
	}
	return stats
}

// generateAffixes rolls affixes with distinct types, sampled without replacement
func generateAffixes(roller dice.Roller, count, itemLevel int, rarity equipment.Rarity) []equipment.Affix {
	if count == 0 {
		return nil
	}

	available := equipment.AffixTypes()
	affixes := make([]equipment.Affix, 0, count)

	for i := 0; i < count && len(available) > 0; i++ {
		idx := roller.Intn(len(available))
		affixType := available[idx]
		available = append(available[:idx], available[idx+1:]...)

		affix := equipment.Affix{
			AffixType: affixType,
			Value:     affixValue(affixType, itemLevel, rarity),
		}
		if affixType == equipment.AffixElementalDamage {
			elements := combat.Elements()
			element := elements[roller.Intn(len(elements))]
			affix.Element = &element
		}
		affixes = append(affixes, affix)
	}
	return affixes
}

// affixValue computes an affix value from its type, item level, and rarity
func affixValue(affixType equipment.AffixType, itemLevel int, rarity equipment.Rarity) int {
	multiplier := affixMultiplier[rarity]
	level := float64(itemLevel)

	switch affixType {
	case equipment.AffixAttackBonus, equipment.AffixDefenseBonus, equipment.AffixHPBonus:
		return int(level * 2 * multiplier)
	case equipment.AffixSpeedBonus:
		return int(level * multiplier)
	case equipment.AffixCritChance:
		value := int(level * 0.5 * multiplier)
		if value > 25 {
			value = 25
		}
		return value
	case equipment.AffixElementalDamage:
		return int(level * 1.5 * multiplier)
	case equipment.AffixLifesteal:
		value := int(level * 0.3 * multiplier)
		if value > 20 {
			value = 20
		}
		return value
	case equipment.AffixProcDamage:
		return int(level * 3 * multiplier)
	}
	return itemLevel
}

// generateSpecialProc picks a slot-specific proc description
func generateSpecialProc(roller dice.Roller, slot equipment.Slot) string {
	var procs []string
	switch slot {
	case equipment.SlotWeapon:
		procs = weaponProcs
	case equipment.SlotArmor:
		procs = armorProcs
	default:
		procs = accessoryProcs
	}
	return procs[roller.Intn(len(procs))]
}

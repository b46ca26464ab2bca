package loot

import (
	"github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// MonsterTier is a monster strength bracket driving loot table selection
type MonsterTier string

const (
	Tier1 MonsterTier = "tier_1"
	Tier2 MonsterTier = "tier_2"
	Tier3 MonsterTier = "tier_3"
	Tier4 MonsterTier = "tier_4"
)

// ParseMonsterTier validates a wire value and returns the matching tier
func ParseMonsterTier(s string) (MonsterTier, error) {
	switch MonsterTier(s) {
	case Tier1, Tier2, Tier3, Tier4:
		return MonsterTier(s), nil
	}
	return "", apperr.InvalidArgumentf("unknown monster tier: %q", s)
}

// Entry is one row of a loot table. For equipment entries Weight drives the
// cumulative-weight selection; for currency entries Weight/100 is a Bernoulli
// drop chance. Guaranteed entries always drop.
type Entry struct {
	ItemID       string            `json:"item_id,omitempty" yaml:"item_id"`
	Weight       int               `json:"weight" yaml:"weight"`
	MinQuantity  int               `json:"min_quantity" yaml:"min_quantity"`
	MaxQuantity  int               `json:"max_quantity" yaml:"max_quantity"`
	Rarity       *equipment.Rarity `json:"rarity,omitempty" yaml:"rarity"`
	IsGuaranteed bool              `json:"is_guaranteed" yaml:"is_guaranteed"`
}

// Table is a static loot configuration. Tables are not mutated after creation.
type Table struct {
	TableID       string      `json:"table_id" yaml:"table_id"`
	Name          string      `json:"name" yaml:"name"`
	MonsterTier   MonsterTier `json:"monster_tier" yaml:"monster_tier"`
	Entries       []Entry     `json:"entries" yaml:"entries"`
	CurrencyDrops []Entry     `json:"currency_drops" yaml:"currency_drops"`
}

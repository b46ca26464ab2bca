package equipment

import (
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// Slot is an equipment slot
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Slots lists every slot in stable order
func Slots() []Slot {
	return []Slot{SlotWeapon, SlotArmor, SlotAccessory}
}

// ParseSlot validates a wire value and returns the matching Slot
func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotWeapon, SlotArmor, SlotAccessory:
		return Slot(s), nil
	}
	return "", apperr.InvalidArgumentf("unknown equipment slot: %q", s)
}

// Rarity is an item rarity tier
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every rarity from weakest to strongest
func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// ParseRarity validates a wire value and returns the matching Rarity
func ParseRarity(s string) (Rarity, error) {
	switch Rarity(s) {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return Rarity(s), nil
	}
	return "", apperr.InvalidArgumentf("unknown item rarity: %q", s)
}

// AffixType identifies a secondary stat modifier rolled onto equipment
type AffixType string

const (
	AffixAttackBonus     AffixType = "attack_bonus"
	AffixDefenseBonus    AffixType = "defense_bonus"
	AffixHPBonus         AffixType = "hp_bonus"
	AffixSpeedBonus      AffixType = "speed_bonus"
	AffixCritChance      AffixType = "crit_chance"
	AffixElementalDamage AffixType = "elemental_damage"
	AffixLifesteal       AffixType = "lifesteal"
	AffixProcDamage      AffixType = "proc_damage"
)

// AffixTypes lists every affix type in stable order
func AffixTypes() []AffixType {
	return []AffixType{
		AffixAttackBonus,
		AffixDefenseBonus,
		AffixHPBonus,
		AffixSpeedBonus,
		AffixCritChance,
		AffixElementalDamage,
		AffixLifesteal,
		AffixProcDamage,
	}
}

// Affix is a rolled stat modifier on a piece of equipment
type Affix struct {
	AffixType AffixType       `json:"affix_type"`
	Value     int             `json:"value"`
	Element   *combat.Element `json:"element,omitempty"`
}

// Equipment is a generated item
type Equipment struct {
	ItemID           string         `json:"item_id"`
	Name             string         `json:"name"`
	Slot             Slot           `json:"slot"`
	Rarity           Rarity         `json:"rarity"`
	LevelRequirement int            `json:"level_requirement"`
	BaseStats        map[string]int `json:"base_stats"`
	Affixes          []Affix        `json:"affixes"`
	SpecialProc      string         `json:"special_proc,omitempty"`
}

package equipment

import (
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
)

// PlayerInventory holds a player's equipped items, bag, and currency balance
type PlayerInventory struct {
	PlayerID  string              `json:"player_id"`
	Equipment map[Slot]*Equipment `json:"equipment"`
	Inventory []*Equipment        `json:"inventory"`
	Currency  int                 `json:"currency"`
}

// NewPlayerInventory creates an empty inventory with every slot unequipped
func NewPlayerInventory(playerID string) *PlayerInventory {
	equipped := make(map[Slot]*Equipment, len(Slots()))
	for _, slot := range Slots() {
		equipped[slot] = nil
	}
	return &PlayerInventory{
		PlayerID:  playerID,
		Equipment: equipped,
	}
}

// Equip moves the identified item from the bag into its slot. Returns the
// previously equipped item, which the caller gets back in the bag.
func (p *PlayerInventory) Equip(itemID string) *Equipment {
	item := p.Remove(itemID)
	if item == nil {
		return nil
	}

	previous := p.Equipment[item.Slot]
	p.Equipment[item.Slot] = item
	if previous != nil {
		p.Inventory = append(p.Inventory, previous)
	}
	return previous
}

// Unequip clears a slot and returns the item to the bag
func (p *PlayerInventory) Unequip(slot Slot) *Equipment {
	item := p.Equipment[slot]
	if item != nil {
		p.Equipment[slot] = nil
		p.Inventory = append(p.Inventory, item)
	}
	return item
}

// Add places an item in the bag
func (p *PlayerInventory) Add(item *Equipment) {
	p.Inventory = append(p.Inventory, item)
}

// Remove takes an item out of the bag by ID, or returns nil when absent
func (p *PlayerInventory) Remove(itemID string) *Equipment {
	for i, item := range p.Inventory {
		if item.ItemID == itemID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return item
		}
	}
	return nil
}

// TotalStats aggregates base stats and affixes across all equipped items
func (p *PlayerInventory) TotalStats() map[string]int {
	totals := map[string]int{
		"attack":      0,
		"defense":     0,
		"hp":          0,
		"speed":       0,
		"crit_chance": 0,
		"lifesteal":   0,
	}

	for _, item := range p.Equipment {
		if item == nil {
			continue
		}
		for stat, value := range item.BaseStats {
			if _, ok := totals[stat]; ok {
				totals[stat] += value
			}
		}
		for _, affix := range item.Affixes {
			switch affix.AffixType {
			case AffixAttackBonus:
				totals["attack"] += affix.Value
			case AffixDefenseBonus:
				totals["defense"] += affix.Value
			case AffixHPBonus:
				totals["hp"] += affix.Value
			case AffixSpeedBonus:
				totals["speed"] += affix.Value
			case AffixCritChance:
				totals["crit_chance"] += affix.Value
			case AffixLifesteal:
				totals["lifesteal"] += affix.Value
			}
		}
	}

	return totals
}

// ApplyToCharacter returns a copy of the character with equipped stat bonuses
// applied. The original character is never mutated.
func (p *PlayerInventory) ApplyToCharacter(character *combat.Character) *combat.Character {
	equipped := character.Clone()
	totals := p.TotalStats()

	equipped.Attack.CurrentValue += totals["attack"]
	equipped.Defense.CurrentValue += totals["defense"]
	equipped.Speed.CurrentValue += totals["speed"]
	equipped.MaxHP += totals["hp"]
	equipped.CurrentHP += totals["hp"]

	return equipped
}

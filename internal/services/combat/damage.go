package combat

import (
	"github.com/KirkDiggler/combat-arena/internal/dice"
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
)

const (
	// critChanceBase is the base critical hit chance
	critChanceBase = 0.15

	// missChanceBase is the base miss chance
	missChanceBase = 0.05

	// critMultiplier doubles damage on a critical hit
	critMultiplier = 2.0
)

// DamageCalculator computes attack damage from current stats, elemental
// matchup, and crit/miss rolls drawn from its roller.
type DamageCalculator struct {
	roller dice.Roller
}

// NewDamageCalculator creates a calculator drawing from the given roller
func NewDamageCalculator(roller dice.Roller) *DamageCalculator {
	return &DamageCalculator{roller: roller}
}

// Calculate returns (damage, isCrit, isMiss) for one hit. A miss
// short-circuits every later step. With useRandom false no draws occur and
// the result is a pure function of current stats.
func (c *DamageCalculator) Calculate(attacker, defender *combat.Character, baseMultiplier float64, useRandom bool) (int, bool, bool) {
	if useRandom && c.roller.Float64() < missChanceBase {
		return 0, false, true
	}

	attackBonus := 0
	if effect := attacker.GetStatusEffect(combat.EffectAttackBuff); effect != nil {
		attackBonus = effect.Value
	}
	effectiveAttack := attacker.Attack.CurrentValue + attackBonus

	// Debuffs already mutated the defender's current defense directly.
	effectiveDefense := defender.Defense.CurrentValue

	damage := int(float64(effectiveAttack)*baseMultiplier - float64(effectiveDefense)*0.5)
	if damage < 1 {
		damage = 1
	}

	damage = int(float64(damage) * ElementalModifier(attacker.Element, defender.Element))

	isCrit := false
	if useRandom && c.roller.Float64() < critChanceBase {
		damage = int(float64(damage) * critMultiplier)
		isCrit = true
	}

	// A landed hit never deals less than 1
	if damage < 1 {
		damage = 1
	}
	return damage, isCrit, false
}

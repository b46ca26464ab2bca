package combat

import (
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
)

// advantageMatrix maps attacker element -> defender element -> multiplier.
// The cycle runs fire > earth > wind > water > fire at 1.5x; the reverse of
// each advantaged pair penalizes the attacker at 0.8x. Anything else is 1.0x.
var advantageMatrix = map[combat.Element]map[combat.Element]float64{
	combat.ElementFire:    {combat.ElementEarth: 1.5, combat.ElementWind: 0.8},
	combat.ElementWater:   {combat.ElementFire: 1.5, combat.ElementEarth: 0.8},
	combat.ElementEarth:   {combat.ElementWater: 1.5, combat.ElementWind: 0.8},
	combat.ElementWind:    {combat.ElementWater: 1.5, combat.ElementFire: 0.8},
	combat.ElementNeutral: {},
}

// ElementalModifier returns the damage multiplier for an attacker element
// hitting a defender element
func ElementalModifier(attacker, defender combat.Element) float64 {
	if modifiers, ok := advantageMatrix[attacker]; ok {
		if modifier, ok := modifiers[defender]; ok {
			return modifier
		}
	}
	return 1.0
}

package monster

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
)

// tierStats holds the base stat line for a monster tier before floor scaling
type tierStats struct {
	hp      int
	attack  int
	defense int
	speed   int
}

var baseStatsByTier = map[loot.MonsterTier]tierStats{
	loot.Tier1: {hp: 30, attack: 8, defense: 5, speed: 8},
	loot.Tier2: {hp: 50, attack: 12, defense: 8, speed: 10},
	loot.Tier3: {hp: 80, attack: 18, defense: 12, speed: 12},
	loot.Tier4: {hp: 120, attack: 25, defense: 18, speed: 15},
}

// GenerateForTier builds a monster for the given tier and floor. Stats scale
// by 1 + floor*0.1.
func GenerateForTier(tier loot.MonsterTier, floor int) *combat.Character {
	stats, ok := baseStatsByTier[tier]
	if !ok {
		stats = baseStatsByTier[loot.Tier1]
	}

	scale := 1.0 + float64(floor)*0.1
	hp := int(float64(stats.hp) * scale)

	level := floor
	if level < 1 {
		level = 1
	}

	return &combat.Character{
		ID:        fmt.Sprintf("monster_%s_%d", tier, floor),
		Name:      fmt.Sprintf("%s Floor %d", tierDisplayName(tier), floor),
		Class:     combat.ClassRogue,
		Level:     level,
		MaxHP:     hp,
		CurrentHP: hp,
		Attack:    combat.NewStat(int(float64(stats.attack) * scale)),
		Defense:   combat.NewStat(int(float64(stats.defense) * scale)),
		Speed:     combat.NewStat(int(float64(stats.speed) * scale)),
		Element:   combat.ElementNeutral,
	}
}

func tierDisplayName(tier loot.MonsterTier) string {
	parts := strings.Split(string(tier), "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

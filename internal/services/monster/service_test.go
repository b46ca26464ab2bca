package monster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
)

func TestGenerateForTier(t *testing.T) {
	tests := []struct {
		name     string
		tier     loot.MonsterTier
		floor    int
		wantHP   int
		wantAtk  int
		wantDef  int
		wantSpd  int
		wantName string
	}{
		{
			name:     "tier 1 floor 1",
			tier:     loot.Tier1,
			floor:    1,
			wantHP:   33, // int(30 * 1.1)
			wantAtk:  8,  // int(8 * 1.1)
			wantDef:  5,
			wantSpd:  8,
			wantName: "Tier 1 Floor 1",
		},
		{
			name:     "tier 2 floor 5",
			tier:     loot.Tier2,
			floor:    5,
			wantHP:   75, // int(50 * 1.5)
			wantAtk:  18,
			wantDef:  12,
			wantSpd:  15,
			wantName: "Tier 2 Floor 5",
		},
		{
			name:     "tier 4 floor 10",
			tier:     loot.Tier4,
			floor:    10,
			wantHP:   240, // int(120 * 2.0)
			wantAtk:  50,
			wantDef:  36,
			wantSpd:  30,
			wantName: "Tier 4 Floor 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monster := GenerateForTier(tt.tier, tt.floor)
			require.NoError(t, monster.Validate())

			assert.Equal(t, tt.wantHP, monster.MaxHP)
			assert.Equal(t, tt.wantHP, monster.CurrentHP)
			assert.Equal(t, tt.wantAtk, monster.Attack.BaseValue)
			assert.Equal(t, tt.wantDef, monster.Defense.BaseValue)
			assert.Equal(t, tt.wantSpd, monster.Speed.BaseValue)
			assert.Equal(t, tt.wantName, monster.Name)
			assert.Equal(t, combat.ElementNeutral, monster.Element)
		})
	}
}

func TestGenerateForTier_IDAndLevel(t *testing.T) {
	monster := GenerateForTier(loot.Tier3, 7)
	assert.Equal(t, "monster_tier_3_7", monster.ID)
	assert.Equal(t, 7, monster.Level)

	// Floor zero still produces a valid level
	monster = GenerateForTier(loot.Tier1, 0)
	assert.Equal(t, 1, monster.Level)
}

func TestGenerateForTier_UnknownTierFallsBack(t *testing.T) {
	monster := GenerateForTier("tier_9", 1)
	assert.Equal(t, 33, monster.MaxHP) // tier 1 base stats
}

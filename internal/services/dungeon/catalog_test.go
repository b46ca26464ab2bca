package dungeon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 4)

	byID := make(map[string]*dungeon.Dungeon)
	for _, d := range catalog {
		require.NoError(t, d.Validate())
		byID[d.ID] = d
	}

	caves := byID["goblin_caves"]
	require.NotNil(t, caves)
	assert.Equal(t, dungeon.DifficultyEasy, caves.Difficulty)
	assert.Equal(t, 1, caves.LevelRequirement)
	assert.Equal(t, 10, caves.EntryCost)
	assert.Equal(t, 5, caves.Floors)
	assert.Equal(t, 5, caves.DailyResetCount)
	assert.Equal(t, 1.0, caves.RewardMultiplier)
	assert.Equal(t, []loot.MonsterTier{loot.Tier1, loot.Tier2}, caves.MonsterTiers)

	realm := byID["shadow_realm"]
	require.NotNil(t, realm)
	assert.Equal(t, dungeon.DifficultyNightmare, realm.Difficulty)
	assert.Equal(t, 15, realm.LevelRequirement)
	assert.Equal(t, 100, realm.EntryCost)
	assert.Equal(t, 15, realm.Floors)
	assert.Equal(t, 1, realm.DailyResetCount)
	assert.Equal(t, 2.0, realm.RewardMultiplier)
	assert.Equal(t, []loot.MonsterTier{loot.Tier4}, realm.MonsterTiers)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`
- dungeon_id: test_crypt
  name: Test Crypt
  description: A crypt for testing.
  difficulty: normal
  level_requirement: 3
  entry_cost: 15
  floors: 4
  daily_reset_count: 2
  reward_multiplier: 1.1
  monster_tiers:
    - tier_1
    - tier_2
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	crypt := catalog[0]
	assert.Equal(t, "test_crypt", crypt.ID)
	assert.Equal(t, dungeon.DifficultyNormal, crypt.Difficulty)
	assert.Equal(t, 4, crypt.Floors)
	assert.Equal(t, []loot.MonsterTier{loot.Tier1, loot.Tier2}, crypt.MonsterTiers)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	badYAML := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("{not yaml"), 0o600))
	_, err = LoadCatalog(badYAML)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o600))
	_, err = LoadCatalog(empty)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`
- dungeon_id: broken
  difficulty: impossible
  floors: 1
  daily_reset_count: 1
`), 0o600))
	_, err = LoadCatalog(invalid)
	assert.Error(t, err)
}

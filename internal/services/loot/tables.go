package loot

import (
	"fmt"

	domainequip "github.com/KirkDiggler/combat-arena/internal/domain/equipment"
	"github.com/KirkDiggler/combat-arena/internal/domain/loot"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// maxGuaranteedDrops is the advisory ceiling on guaranteed equipment entries
const maxGuaranteedDrops = 3

func rarityPtr(r domainequip.Rarity) *domainequip.Rarity {
	return &r
}

// defaultTableConfig is the stock loot configuration per monster tier.
// Higher tiers shift weight toward rare+ rarities and drop more currency.
var defaultTableConfig = map[loot.MonsterTier]struct {
	name          string
	entries       []loot.Entry
	currencyDrops []loot.Entry
}{
	loot.Tier1: {
		name: "Common Monster Drops",
		entries: []loot.Entry{
			{Weight: 70, Rarity: rarityPtr(domainequip.RarityCommon)},
			{Weight: 25, Rarity: rarityPtr(domainequip.RarityUncommon)},
			{Weight: 5, Rarity: rarityPtr(domainequip.RarityRare)},
		},
		currencyDrops: []loot.Entry{
			{Weight: 100, MinQuantity: 1, MaxQuantity: 5, IsGuaranteed: true},
		},
	},
	loot.Tier2: {
		name: "Elite Monster Drops",
		entries: []loot.Entry{
			{Weight: 50, Rarity: rarityPtr(domainequip.RarityCommon)},
			{Weight: 35, Rarity: rarityPtr(domainequip.RarityUncommon)},
			{Weight: 12, Rarity: rarityPtr(domainequip.RarityRare)},
			{Weight: 3, Rarity: rarityPtr(domainequip.RarityEpic)},
		},
		currencyDrops: []loot.Entry{
			{Weight: 100, MinQuantity: 5, MaxQuantity: 15, IsGuaranteed: true},
		},
	},
	loot.Tier3: {
		name: "Mini-Boss Drops",
		entries: []loot.Entry{
			{Weight: 30, Rarity: rarityPtr(domainequip.RarityCommon)},
			{Weight: 40, Rarity: rarityPtr(domainequip.RarityUncommon)},
			{Weight: 20, Rarity: rarityPtr(domainequip.RarityRare)},
			{Weight: 8, Rarity: rarityPtr(domainequip.RarityEpic)},
			{Weight: 2, Rarity: rarityPtr(domainequip.RarityLegendary)},
		},
		currencyDrops: []loot.Entry{
			{Weight: 100, MinQuantity: 10, MaxQuantity: 25, IsGuaranteed: true},
			{Weight: 50, MinQuantity: 1, MaxQuantity: 3}, // bonus currency chance
		},
	},
	loot.Tier4: {
		name: "Boss Monster Drops",
		entries: []loot.Entry{
			{Weight: 20, Rarity: rarityPtr(domainequip.RarityCommon)},
			{Weight: 30, Rarity: rarityPtr(domainequip.RarityUncommon)},
			{Weight: 25, Rarity: rarityPtr(domainequip.RarityRare)},
			{Weight: 15, Rarity: rarityPtr(domainequip.RarityEpic)},
			{Weight: 10, Rarity: rarityPtr(domainequip.RarityLegendary)},
			// Bosses always drop at least one rare
			{Weight: 1, Rarity: rarityPtr(domainequip.RarityRare), IsGuaranteed: true},
		},
		currencyDrops: []loot.Entry{
			{Weight: 100, MinQuantity: 25, MaxQuantity: 50, IsGuaranteed: true},
			{Weight: 75, MinQuantity: 5, MaxQuantity: 15},
			{Weight: 25, MinQuantity: 1, MaxQuantity: 5},
		},
	},
}

// DefaultTable implements Service.DefaultTable
func (s *service) DefaultTable(tier loot.MonsterTier, tableID string) (*loot.Table, error) {
	config, ok := defaultTableConfig[tier]
	if !ok {
		return nil, apperr.NotFoundf("no default loot configuration for monster tier %q", tier)
	}

	entries := make([]loot.Entry, len(config.entries))
	copy(entries, config.entries)
	currencyDrops := make([]loot.Entry, len(config.currencyDrops))
	copy(currencyDrops, config.currencyDrops)

	return &loot.Table{
		TableID:       tableID,
		Name:          config.name,
		MonsterTier:   tier,
		Entries:       entries,
		CurrencyDrops: currencyDrops,
	}, nil
}

// CustomTable implements Service.CustomTable
func (s *service) CustomTable(tableID, name string, tier loot.MonsterTier, entries, currencyDrops []loot.Entry) (*loot.Table, error) {
	if tableID == "" {
		return nil, apperr.InvalidArgument("table id is required")
	}
	if _, err := loot.ParseMonsterTier(string(tier)); err != nil {
		return nil, err
	}

	return &loot.Table{
		TableID:       tableID,
		Name:          name,
		MonsterTier:   tier,
		Entries:       entries,
		CurrencyDrops: currencyDrops,
	}, nil
}

// ValidateTable implements Service.ValidateTable
func (s *service) ValidateTable(table *loot.Table) []string {
	var issues []string
	if table == nil {
		return []string{"loot table is nil"}
	}

	if len(table.Entries) == 0 && len(table.CurrencyDrops) == 0 {
		issues = append(issues, "loot table has no entries or currency drops")
	}

	all := make([]loot.Entry, 0, len(table.Entries)+len(table.CurrencyDrops))
	all = append(all, table.Entries...)
	all = append(all, table.CurrencyDrops...)
	for i, entry := range all {
		if entry.Weight < 0 {
			issues = append(issues, fmt.Sprintf("entry %d has negative weight %d", i, entry.Weight))
		}
		if entry.MinQuantity < 0 || entry.MaxQuantity < 0 {
			issues = append(issues, fmt.Sprintf("entry %d has negative quantity", i))
		}
		if entry.MinQuantity > entry.MaxQuantity {
			issues = append(issues, fmt.Sprintf("entry %d has min quantity greater than max", i))
		}
	}

	guaranteed := 0
	for _, entry := range table.Entries {
		if entry.IsGuaranteed {
			guaranteed++
		}
	}
	if guaranteed > maxGuaranteedDrops {
		issues = append(issues, fmt.Sprintf("too many guaranteed drops: %d (max %d recommended)", guaranteed, maxGuaranteedDrops))
	}

	return issues
}

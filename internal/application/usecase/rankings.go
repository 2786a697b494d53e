package usecase

import (
	"fmt"
	"sort"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

// DefaultTopN is the country-view truncation used when no explicit
// limit is configured.
const DefaultTopN = 10

// BuildRankings produces the three ranked bar-chart views of a
// filtered record set. Each view groups by a key, sums a field and
// sorts ascending by the sum, so the largest bar renders on top of a
// horizontal chart. Only the country view is truncated, to the top
// topN groups by value.
func BuildRankings(records []entity.TradeRecord, topN int) entity.RankingSet {
	if topN <= 0 {
		topN = DefaultTopN
	}

	byCountry := rankBy(records,
		func(r entity.TradeRecord) string { return r.Supplier },
		func(r entity.TradeRecord) float64 { return float64(r.DeliveryNumber) })
	if len(byCountry) > topN {
		byCountry = byCountry[len(byCountry)-topN:]
	}

	byCategory := rankBy(records,
		func(r entity.TradeRecord) string { return r.WeaponCategory },
		func(r entity.TradeRecord) float64 { return float64(r.DeliveryNumber) })

	byCategoryTIV := rankBy(records,
		func(r entity.TradeRecord) string { return r.WeaponCategory },
		func(r entity.TradeRecord) float64 { return r.TIVDelivered })

	return entity.RankingSet{
		ByCountry: entity.RankingView{
			Title:   fmt.Sprintf("Delivered Weapons by Country (Top %d)", topN),
			Entries: byCountry,
		},
		ByCategory: entity.RankingView{
			Title:   "Delivered Weapons by Category",
			Entries: byCategory,
		},
		ByCategoryTIV: entity.RankingView{
			Title:   "SIPRI TIV of Delivered Weapons",
			Entries: byCategoryTIV,
		},
	}
}

// rankBy groups records by key, sums value per group and sorts the
// groups ascending by total. Ties sort by label so repeated runs over
// the same data produce identical output.
func rankBy(records []entity.TradeRecord, key func(entity.TradeRecord) string, value func(entity.TradeRecord) float64) []entity.RankingEntry {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[key(record)] += value(record)
	}

	entries := make([]entity.RankingEntry, 0, len(totals))
	for label, total := range totals {
		entries = append(entries, entity.RankingEntry{Label: label, Total: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total < entries[j].Total
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

package entity

// RankingEntry is one (label, total) pair of a ranking view.
type RankingEntry struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// RankingView is an ordered sequence of entries sorted ascending by
// total, so a horizontal bar chart lists the largest bar on top.
type RankingView struct {
	Title   string         `json:"title"`
	Entries []RankingEntry `json:"entries"`
}

// RankingSet holds the three independent ranking views of a filtered
// register: deliveries by country (top N), deliveries by weapon
// category, and TIV by weapon category.
type RankingSet struct {
	ByCountry     RankingView `json:"by_country"`
	ByCategory    RankingView `json:"by_category"`
	ByCategoryTIV RankingView `json:"by_category_tiv"`
}

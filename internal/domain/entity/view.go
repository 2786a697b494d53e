package entity

// DashboardView is everything one rendering pass needs: the selector
// that produced it, the map description, the three ranking views, the
// summary metrics and the projected record table. Views are transient;
// each selector change recomputes the whole thing from the loaded
// dataset.
type DashboardView struct {
	Selector YearRange      `json:"selector"`
	Metrics  SummaryMetrics `json:"metrics"`
	Map      FlowMap        `json:"map"`
	Rankings RankingSet     `json:"rankings"`
	Records  []RecordRow    `json:"records"`
}

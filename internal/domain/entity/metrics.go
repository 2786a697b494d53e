package entity

// SummaryMetrics are the scalar summaries shown above the map. Rank
// and Share are present only when a bounded year range is selected and
// the importer-rank table has a row for it.
type SummaryMetrics struct {
	SupplierCount       int      `json:"supplier_count"`
	TotalDelivered      int64    `json:"total_delivered"`
	TotalDeliveredLabel string   `json:"total_delivered_label"`
	Rank                *int     `json:"rank,omitempty"`
	Share               *float64 `json:"share,omitempty"`
	ShareLabel          string   `json:"share_label,omitempty"`
}

// HasRank reports whether the period rank lookup succeeded.
func (m SummaryMetrics) HasRank() bool {
	return m.Rank != nil && m.Share != nil
}

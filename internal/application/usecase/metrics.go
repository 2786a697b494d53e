package usecase

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

// ComputeMetrics derives the summary metrics of a filtered record set.
// ranks is the unfiltered importer-rank table. When the selector maps
// to a period label and the table holds a row for it, the global rank
// and import share are exposed too; a missing row degrades to the two
// base metrics and is not an error.
func ComputeMetrics(filtered []entity.TradeRecord, ranks []entity.ImporterRank, selector entity.YearRange) entity.SummaryMetrics {
	suppliers := make(map[string]struct{}, len(filtered))
	var totalDelivered int64
	for _, record := range filtered {
		suppliers[record.Supplier] = struct{}{}
		totalDelivered += record.DeliveryNumber
	}

	metrics := entity.SummaryMetrics{
		SupplierCount:       len(suppliers),
		TotalDelivered:      totalDelivered,
		TotalDeliveredLabel: humanize.Comma(totalDelivered),
	}

	period := selector.PeriodLabel()
	if period == "" {
		return metrics
	}
	for _, row := range ranks {
		if row.Period == period {
			rank := row.Rank
			share := row.Share
			metrics.Rank = &rank
			metrics.Share = &share
			metrics.ShareLabel = fmt.Sprintf("%.1f%%", share)
			break
		}
	}
	return metrics
}

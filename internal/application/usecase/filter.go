package usecase

import (
	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

// FilterByDeliveryYear returns the subset of records whose delivery
// year start falls within the selector's inclusive bounds. RangeAll,
// and any selector without bounds, returns the input unchanged in its
// original order.
func FilterByDeliveryYear(records []entity.TradeRecord, selector entity.YearRange) []entity.TradeRecord {
	start, end, bounded := selector.Bounds()
	if !bounded {
		return records
	}

	filtered := make([]entity.TradeRecord, 0, len(records))
	for _, record := range records {
		if record.DeliveryYearStart >= start && record.DeliveryYearStart <= end {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

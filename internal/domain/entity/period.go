package entity

// YearRange is the delivery-year selector exposed to the user.
type YearRange string

const (
	RangeAll      YearRange = "All"
	Range2014to21 YearRange = "2014-2021"
	Range2022to24 YearRange = "2022-2024"
)

// YearRanges lists the selectable ranges in display order.
var YearRanges = []YearRange{RangeAll, Range2014to21, Range2022to24}

// ParseYearRange maps a user-supplied string to a YearRange. Unknown
// values fall back to RangeAll, which leaves the dataset unfiltered.
func ParseYearRange(s string) YearRange {
	switch YearRange(s) {
	case Range2014to21:
		return Range2014to21
	case Range2022to24:
		return Range2022to24
	default:
		return RangeAll
	}
}

// Bounds returns the inclusive [start, end] delivery-year-start bounds
// of the range. bounded is false for RangeAll.
func (y YearRange) Bounds() (start, end int, bounded bool) {
	switch y {
	case Range2014to21:
		return 2014, 2021, true
	case Range2022to24:
		return 2022, 2024, true
	default:
		return 0, 0, false
	}
}

// PeriodLabel returns the label used to look up the importer-rank row
// for this range. RangeAll has no period row.
func (y YearRange) PeriodLabel() string {
	if y == RangeAll {
		return ""
	}
	return string(y)
}

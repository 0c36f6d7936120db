package calculator

import (
	"time"

	"networth/internal/domain"
)

// FilterByRange selects the entries of a time-ordered series that fall
// inside a relative window anchored to now. The caller supplies now so
// the function stays pure and testable with a fixed clock.
//
// ALL passes the input through unchanged; a nil series yields an empty
// slice. For 3M and 1Y the cutoff is now minus 3 calendar months / 1
// calendar year truncated to start of day, inclusive - an entry dated
// exactly on the cutoff day is retained. Month arithmetic follows
// time.AddDate, so subtracting months from a month-end day normalizes
// forward (May 31 - 3M = Mar 3). Input order is preserved.
func FilterByRange(series []domain.TimeSeriesEntry, timeRange domain.TimeRange, now time.Time) []domain.TimeSeriesEntry {
	if series == nil {
		return []domain.TimeSeriesEntry{}
	}
	if timeRange == domain.TimeRange_All {
		return series
	}

	cutoff := RangeCutoff(timeRange, now)

	out := []domain.TimeSeriesEntry{}
	for _, entry := range series {
		if !entry.Date.Before(cutoff) {
			out = append(out, entry)
		}
	}
	return out
}

// RangeCutoff returns the inclusive start-of-day cutoff for a relative
// window anchored to now. ALL yields the zero time, which every dated
// entry passes.
func RangeCutoff(timeRange domain.TimeRange, now time.Time) time.Time {
	cutoff := now
	switch timeRange {
	case domain.TimeRange_ThreeMonths:
		cutoff = now.AddDate(0, -3, 0)
	case domain.TimeRange_OneYear:
		cutoff = now.AddDate(-1, 0, 0)
	case domain.TimeRange_All:
		return time.Time{}
	}
	return startOfDay(cutoff)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

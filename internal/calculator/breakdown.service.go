package calculator

import (
	"networth/internal/domain"
)

// DecomposeBreakdown re-expresses a historical snapshot's stored
// details as cash / TW equity+futures / US equity subtotals.
//
// The value_twd persisted with each detail is authoritative - it was
// computed with that day's fx rate, so recomputing from quantity and
// the current rate would distort the trend. The one degenerate case is
// a pure TWD cash entry, where value_twd trivially equals the quantity
// and may be absent in older snapshots.
func DecomposeBreakdown(entry domain.TimeSeriesEntry) domain.CategoryBreakdown {
	out := domain.CategoryBreakdown{}

	for _, detail := range entry.Details {
		valueTwd := 0.0
		if detail.ValueTwd != nil {
			valueTwd = *detail.ValueTwd
		} else if detail.Type == domain.PositionType_CashTwd {
			valueTwd = detail.Quantity
		}

		switch detail.Type {
		case domain.PositionType_CashTwd, domain.PositionType_CashUsd:
			out.CashTwd += valueTwd
		case domain.PositionType_TwStock, domain.PositionType_TwFuture:
			out.TwStockTwd += valueTwd
		case domain.PositionType_UsStock:
			out.UsStockTwd += valueTwd
		}
	}

	return out
}

package domain

import "time"

type TimeRange string

const (
	TimeRange_ThreeMonths TimeRange = "3M"
	TimeRange_OneYear     TimeRange = "1Y"
	TimeRange_All         TimeRange = "ALL"
)

func (r TimeRange) IsValid() bool {
	switch r {
	case TimeRange_ThreeMonths, TimeRange_OneYear, TimeRange_All:
		return true
	}
	return false
}

// TimeSeriesEntry is one historical sampling point. Exactly one of
// TotalTwd / CumulativePnl is meaningful depending on which series the
// entry came from. Details is only populated for net-worth history.
type TimeSeriesEntry struct {
	Date          time.Time        `json:"date"`
	TotalTwd      *float64         `json:"total_twd,omitempty"`
	TotalUsd      *float64         `json:"total_usd,omitempty"`
	UsdRate       *float64         `json:"usd_rate,omitempty"`
	DailyPnl      *float64         `json:"daily_pnl,omitempty"`
	CumulativePnl *float64         `json:"cumulative_pnl,omitempty"`
	Details       []ValuedPosition `json:"details,omitempty"`
}

// CategoryBreakdown re-expresses a snapshot's details as the three
// coarse buckets the trend chart plots.
type CategoryBreakdown struct {
	CashTwd    float64 `json:"cash_twd"`
	TwStockTwd float64 `json:"tw_stock_twd"`
	UsStockTwd float64 `json:"us_stock_twd"`
}

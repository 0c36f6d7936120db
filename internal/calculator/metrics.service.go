package calculator

import (
	"fmt"
	"math"
	"sort"

	"networth/internal/domain"

	"github.com/montanaflynn/stats"
)

type HistoryMetrics struct {
	AnnualizedStdev  float64 `json:"annualized_stdev"`
	AnnualizedReturn float64 `json:"annualized_return"`
	MaxDrawdown      float64 `json:"max_drawdown"`
}

// CalculateHistoryMetrics summarizes a net-worth history series:
// annualized volatility of daily percent changes, annualized return
// between the first and last sample, and the deepest peak-to-trough
// drawdown. Fewer than two usable entries is an error.
func CalculateHistoryMetrics(series []domain.TimeSeriesEntry) (*HistoryMetrics, error) {
	points := []domain.TimeSeriesEntry{}
	for _, entry := range series {
		if entry.TotalTwd != nil {
			points = append(points, entry)
		}
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 history entries")
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	returns := []float64{}
	for i := 1; i < len(points); i++ {
		prev := *points[i-1].TotalTwd
		if prev == 0 {
			continue
		}
		returns = append(returns, (*points[i].TotalTwd-prev)/prev*100)
	}
	if len(returns) == 0 {
		return nil, fmt.Errorf("no computable returns in history series")
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	annualizedStdev := stdev * math.Sqrt(252)

	startValue := *points[0].TotalTwd
	endValue := *points[len(points)-1].TotalTwd
	numYears := points[len(points)-1].Date.Sub(points[0].Date).Hours() / (365 * 24)

	annualizedReturn := 0.0
	if startValue > 0 && numYears > 0 {
		annualizedReturn = math.Pow(endValue/startValue, 1/numYears) - 1
	}

	return &HistoryMetrics{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		MaxDrawdown:      maxDrawdown(points),
	}, nil
}

// maxDrawdown returns the largest peak-to-trough decline as a
// negative fraction (-0.25 = down 25% from the peak).
func maxDrawdown(points []domain.TimeSeriesEntry) float64 {
	peak := math.Inf(-1)
	drawdown := 0.0
	for _, point := range points {
		value := *point.TotalTwd
		if value > peak {
			peak = value
		}
		if peak > 0 {
			dd := (value - peak) / peak
			if dd < drawdown {
				drawdown = dd
			}
		}
	}
	return drawdown
}

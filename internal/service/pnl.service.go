package service

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"networth/internal/calculator"
	"networth/internal/domain"
	"networth/internal/repository"
)

type PnlService interface {
	GetHistory(timeRange domain.TimeRange, now time.Time) ([]domain.RealizedPnl, error)
	GetCumulative(timeRange domain.TimeRange, now time.Time) ([]domain.TimeSeriesEntry, error)
	// Create records a manual realized pnl entry, for gains realized
	// outside the futures transaction flow
	Create(pnl domain.RealizedPnl) (*domain.RealizedPnl, error)
}

type pnlServiceHandler struct {
	Db                    *sql.DB
	RealizedPnlRepository repository.RealizedPnlRepository
}

func NewPnlService(db *sql.DB, realizedPnlRepository repository.RealizedPnlRepository) PnlService {
	return pnlServiceHandler{
		Db:                    db,
		RealizedPnlRepository: realizedPnlRepository,
	}
}

func (h pnlServiceHandler) Create(pnl domain.RealizedPnl) (*domain.RealizedPnl, error) {
	if pnl.Symbol == "" {
		return nil, fmt.Errorf("realized pnl symbol is required")
	}
	if pnl.Date.IsZero() {
		pnl.Date = time.Now().UTC()
	}
	return h.RealizedPnlRepository.Add(h.Db, pnl)
}

func (h pnlServiceHandler) GetHistory(timeRange domain.TimeRange, now time.Time) ([]domain.RealizedPnl, error) {
	rows, err := h.RealizedPnlRepository.List()
	if err != nil {
		return nil, err
	}

	cutoff := calculator.RangeCutoff(timeRange, now)
	out := []domain.RealizedPnl{}
	for _, row := range rows {
		if !row.Date.Before(cutoff) {
			out = append(out, row)
		}
	}
	return out, nil
}

// GetCumulative collapses realized pnl rows into one entry per day,
// with a running total across the whole recorded history. The range
// filter is applied after accumulation so a 3M view still carries the
// lifetime running total.
func (h pnlServiceHandler) GetCumulative(timeRange domain.TimeRange, now time.Time) ([]domain.TimeSeriesEntry, error) {
	rows, err := h.RealizedPnlRepository.ListAscending()
	if err != nil {
		return nil, err
	}

	dailyTotals := map[time.Time]float64{}
	days := []time.Time{}
	for _, row := range rows {
		day := time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC)
		if _, seen := dailyTotals[day]; !seen {
			days = append(days, day)
		}
		dailyTotals[day] += row.Pnl
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]domain.TimeSeriesEntry, 0, len(days))
	cumulative := 0.0
	for _, day := range days {
		daily := dailyTotals[day]
		cumulative += daily
		series = append(series, domain.TimeSeriesEntry{
			Date:          day,
			DailyPnl:      floatPtr(daily),
			CumulativePnl: floatPtr(cumulative),
		})
	}

	return calculator.FilterByRange(series, timeRange, now), nil
}

func floatPtr(f float64) *float64 {
	return &f
}

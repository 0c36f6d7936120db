package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"networth/internal/calculator"
	"networth/internal/domain"
	"networth/internal/logger"
	"networth/internal/repository"
)

// rate used when the fx provider is unreachable, so the dashboard
// degrades instead of going blank
const fallbackUsdTwdRate = 32.0

type NetWorthService interface {
	GetCurrentSnapshot(ctx context.Context) (*domain.NetWorthSnapshot, error)
	GetHistory(timeRange domain.TimeRange, now time.Time) ([]domain.TimeSeriesEntry, error)
	GetBreakdownHistory(timeRange domain.TimeRange, now time.Time) ([]BreakdownPoint, error)
	GetAllocation(ctx context.Context, dataKey calculator.AllocationDataKey, groupingMode calculator.AllocationGroupingMode) ([]calculator.AllocationSlice, error)
	GetHistoryMetrics(timeRange domain.TimeRange, now time.Time) (*calculator.HistoryMetrics, error)
	// RecordDailySnapshot persists today's snapshot, replacing an
	// earlier recording from the same day
	RecordDailySnapshot(ctx context.Context) error
}

type BreakdownPoint struct {
	Date string `json:"date"`
	domain.CategoryBreakdown
}

type netWorthServiceHandler struct {
	Db                    *sql.DB
	PositionRepository    repository.PositionRepository
	FxRateRepository      repository.FxRateRepository
	MarketPriceRepository repository.MarketPriceRepository
	HistoryRepository     repository.NetWorthHistoryRepository
	// total futures margin pool backing positions with no assigned
	// margin. 0 means no pool is configured
	MarginPool float64
}

func NewNetWorthService(
	db *sql.DB,
	positionRepository repository.PositionRepository,
	fxRateRepository repository.FxRateRepository,
	marketPriceRepository repository.MarketPriceRepository,
	historyRepository repository.NetWorthHistoryRepository,
	marginPool float64,
) NetWorthService {
	return netWorthServiceHandler{
		Db:                    db,
		PositionRepository:    positionRepository,
		FxRateRepository:      fxRateRepository,
		MarketPriceRepository: marketPriceRepository,
		HistoryRepository:     historyRepository,
		MarginPool:            marginPool,
	}
}

func (h netWorthServiceHandler) GetCurrentSnapshot(ctx context.Context) (*domain.NetWorthSnapshot, error) {
	log := logger.FromContext(ctx)

	positions, err := h.PositionRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	usdRate, err := h.FxRateRepository.GetUsdTwdRate()
	if err != nil {
		log.Warnf("fx rate unavailable, using fallback %v: %v", fallbackUsdTwdRate, err)
		usdRate = fallbackUsdTwdRate
	}

	prices := h.loadPrices(ctx, positions)
	policy := newRemainingMarginPolicy(positions, h.MarginPool)

	snapshot := calculator.ComputeSnapshot(positions, usdRate, prices, policy)
	return &snapshot, nil
}

// loadPrices resolves a market price for every priced position type.
// Failures are tolerated - the valuation marks those positions
// unavailable rather than failing the whole snapshot.
func (h netWorthServiceHandler) loadPrices(ctx context.Context, positions []domain.Position) calculator.PriceMap {
	log := logger.FromContext(ctx)

	prices := calculator.PriceMap{}
	for _, position := range positions {
		if position.Type.IsCash() {
			continue
		}
		key := position.SymbolOrType()
		if _, ok := prices[key]; ok {
			continue
		}
		price, err := h.MarketPriceRepository.GetPrice(key, position.Type)
		if err != nil {
			log.Warnf("no market price for %s: %v", key, err)
			continue
		}
		prices[key] = price
	}
	return prices
}

func (h netWorthServiceHandler) GetHistory(timeRange domain.TimeRange, now time.Time) ([]domain.TimeSeriesEntry, error) {
	history, err := h.HistoryRepository.List()
	if err != nil {
		return nil, err
	}
	return calculator.FilterByRange(history, timeRange, now), nil
}

func (h netWorthServiceHandler) GetBreakdownHistory(timeRange domain.TimeRange, now time.Time) ([]BreakdownPoint, error) {
	history, err := h.GetHistory(timeRange, now)
	if err != nil {
		return nil, err
	}

	out := make([]BreakdownPoint, 0, len(history))
	for _, entry := range history {
		out = append(out, BreakdownPoint{
			Date:              entry.Date.Format(time.DateOnly),
			CategoryBreakdown: calculator.DecomposeBreakdown(entry),
		})
	}
	return out, nil
}

func (h netWorthServiceHandler) GetAllocation(ctx context.Context, dataKey calculator.AllocationDataKey, groupingMode calculator.AllocationGroupingMode) ([]calculator.AllocationSlice, error) {
	snapshot, err := h.GetCurrentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	total := snapshot.TotalTwd
	if dataKey == calculator.AllocationDataKey_NotionalValue {
		total = 0
		for _, detail := range snapshot.Details {
			if detail.NotionalValue != nil {
				total += *detail.NotionalValue
			}
		}
	}

	return calculator.GroupAllocation(snapshot.Details, dataKey, groupingMode, total), nil
}

func (h netWorthServiceHandler) GetHistoryMetrics(timeRange domain.TimeRange, now time.Time) (*calculator.HistoryMetrics, error) {
	history, err := h.GetHistory(timeRange, now)
	if err != nil {
		return nil, err
	}
	return calculator.CalculateHistoryMetrics(history)
}

func (h netWorthServiceHandler) RecordDailySnapshot(ctx context.Context) error {
	snapshot, err := h.GetCurrentSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute snapshot for recording: %w", err)
	}

	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	err = h.HistoryRepository.Upsert(day, *snapshot)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Infof("recorded net worth snapshot for %s: total %0.0f TWD", day.Format(time.DateOnly), snapshot.TotalTwd)
	return nil
}

// remainingMarginPolicy splits the unallocated portion of the
// configured margin pool evenly across futures positions that have no
// assigned margin.
type remainingMarginPolicy struct {
	sharePerPosition float64
}

func newRemainingMarginPolicy(positions []domain.Position, marginPool float64) calculator.MarginPolicy {
	if marginPool <= 0 {
		return remainingMarginPolicy{}
	}

	allocated := 0.0
	unassigned := 0
	for _, position := range positions {
		if position.Type != domain.PositionType_TwFuture {
			continue
		}
		if position.AssignedMargin != nil && *position.AssignedMargin > 0 {
			allocated += *position.AssignedMargin
		} else {
			unassigned++
		}
	}

	remaining := marginPool - allocated
	if unassigned == 0 || remaining <= 0 {
		return remainingMarginPolicy{}
	}

	return remainingMarginPolicy{sharePerPosition: remaining / float64(unassigned)}
}

func (p remainingMarginPolicy) MarginFor(position domain.Position) (float64, bool) {
	if p.sharePerPosition <= 0 {
		return 0, false
	}
	return p.sharePerPosition, true
}

package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"networth/internal/db/models/postgres/public/model"
	"networth/internal/db/models/postgres/public/table"
	"networth/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type NetWorthHistoryRepository interface {
	// List returns all persisted snapshots in date order
	List() ([]domain.TimeSeriesEntry, error)
	// Upsert writes the snapshot for a day, replacing any existing
	// entry for the same date. one row per calendar day
	Upsert(date time.Time, snapshot domain.NetWorthSnapshot) error
}

type netWorthHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewNetWorthHistoryRepository(db *sql.DB) NetWorthHistoryRepository {
	return netWorthHistoryRepositoryHandler{Db: db}
}

func (h netWorthHistoryRepositoryHandler) List() ([]domain.TimeSeriesEntry, error) {
	query := table.NetWorthHistory.
		SELECT(table.NetWorthHistory.AllColumns).
		ORDER_BY(table.NetWorthHistory.Date.ASC())

	results := []model.NetWorthHistory{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth history: %w", err)
	}

	out := make([]domain.TimeSeriesEntry, 0, len(results))
	for _, result := range results {
		entry := domain.TimeSeriesEntry{
			Date:     result.Date,
			TotalTwd: &result.TotalTwd,
			TotalUsd: &result.TotalUsd,
			UsdRate:  &result.UsdRate,
		}
		if result.Details != "" {
			details := []domain.ValuedPosition{}
			if err := json.Unmarshal([]byte(result.Details), &details); err != nil {
				return nil, fmt.Errorf("failed to decode history details for %s: %w", result.Date.Format(time.DateOnly), err)
			}
			entry.Details = details
		}
		out = append(out, entry)
	}

	return out, nil
}

func (h netWorthHistoryRepositoryHandler) Upsert(date time.Time, snapshot domain.NetWorthSnapshot) error {
	detailBytes, err := json.Marshal(snapshot.Details)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot details: %w", err)
	}

	now := time.Now().UTC()
	m := model.NetWorthHistory{
		HistoryID:     uuid.New(),
		Date:          date,
		TotalTwd:      snapshot.TotalTwd,
		TotalUsd:      snapshot.TotalUsd,
		UsdRate:       snapshot.UsdRate,
		LeverageRatio: snapshot.LeverageRatio,
		Details:       string(detailBytes),
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	query := table.NetWorthHistory.
		INSERT(table.NetWorthHistory.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.NetWorthHistory.Date).
		DO_UPDATE(postgres.SET(
			table.NetWorthHistory.TotalTwd.SET(table.NetWorthHistory.EXCLUDED.TotalTwd),
			table.NetWorthHistory.TotalUsd.SET(table.NetWorthHistory.EXCLUDED.TotalUsd),
			table.NetWorthHistory.UsdRate.SET(table.NetWorthHistory.EXCLUDED.UsdRate),
			table.NetWorthHistory.LeverageRatio.SET(table.NetWorthHistory.EXCLUDED.LeverageRatio),
			table.NetWorthHistory.Details.SET(table.NetWorthHistory.EXCLUDED.Details),
			table.NetWorthHistory.ModifiedAt.SET(table.NetWorthHistory.EXCLUDED.ModifiedAt),
		))

	_, err = query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert net worth history for %s: %w", date.Format(time.DateOnly), err)
	}

	return nil
}

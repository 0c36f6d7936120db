package repository

import (
	"database/sql"
	"fmt"
	"time"

	"networth/internal/db/models/postgres/public/model"
	"networth/internal/db/models/postgres/public/table"
	"networth/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type RealizedPnlRepository interface {
	// List returns realized P&L rows, newest first
	List() ([]domain.RealizedPnl, error)
	// ListAscending returns rows in date order for running-total math
	ListAscending() ([]domain.RealizedPnl, error)
	Add(db qrm.Queryable, pnl domain.RealizedPnl) (*domain.RealizedPnl, error)
}

type realizedPnlRepositoryHandler struct {
	Db *sql.DB
}

func NewRealizedPnlRepository(db *sql.DB) RealizedPnlRepository {
	return realizedPnlRepositoryHandler{Db: db}
}

func (h realizedPnlRepositoryHandler) List() ([]domain.RealizedPnl, error) {
	query := table.RealizedPnl.
		SELECT(table.RealizedPnl.AllColumns).
		ORDER_BY(table.RealizedPnl.Date.DESC())

	return h.list(query)
}

func (h realizedPnlRepositoryHandler) ListAscending() ([]domain.RealizedPnl, error) {
	query := table.RealizedPnl.
		SELECT(table.RealizedPnl.AllColumns).
		ORDER_BY(table.RealizedPnl.Date.ASC())

	return h.list(query)
}

func (h realizedPnlRepositoryHandler) list(query postgres.SelectStatement) ([]domain.RealizedPnl, error) {
	results := []model.RealizedPnl{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list realized pnl: %w", err)
	}

	out := make([]domain.RealizedPnl, 0, len(results))
	for _, result := range results {
		out = append(out, domain.RealizedPnl{
			PnlID:    result.PnlID,
			Date:     result.Date,
			Symbol:   result.Symbol,
			Quantity: result.Quantity,
			Pnl:      result.Pnl,
			Notes:    result.Notes,
		})
	}
	return out, nil
}

func (h realizedPnlRepositoryHandler) Add(db qrm.Queryable, pnl domain.RealizedPnl) (*domain.RealizedPnl, error) {
	m := model.RealizedPnl{
		PnlID:     uuid.New(),
		Date:      pnl.Date,
		Symbol:    pnl.Symbol,
		Quantity:  pnl.Quantity,
		Pnl:       pnl.Pnl,
		Notes:     pnl.Notes,
		CreatedAt: time.Now().UTC(),
	}

	query := table.RealizedPnl.
		INSERT(table.RealizedPnl.AllColumns).
		MODEL(m).
		RETURNING(table.RealizedPnl.AllColumns)

	out := model.RealizedPnl{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert realized pnl: %w", err)
	}

	return &domain.RealizedPnl{
		PnlID:    out.PnlID,
		Date:     out.Date,
		Symbol:   out.Symbol,
		Quantity: out.Quantity,
		Pnl:      out.Pnl,
		Notes:    out.Notes,
	}, nil
}

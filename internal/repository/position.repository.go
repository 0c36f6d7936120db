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

type PositionRepository interface {
	List() ([]domain.Position, error)
	Get(positionID uuid.UUID) (*domain.Position, error)
	Add(db qrm.Queryable, position domain.Position) (*domain.Position, error)
	Update(db qrm.Queryable, position domain.Position) (*domain.Position, error)
	Delete(db qrm.Executable, positionID uuid.UUID) error
	// GetByContract finds the open futures position for a symbol and
	// contract month, if one exists
	GetByContract(db qrm.Queryable, symbol, contractMonth string) (*domain.Position, error)
}

type positionRepositoryHandler struct {
	Db *sql.DB
}

func NewPositionRepository(db *sql.DB) PositionRepository {
	return positionRepositoryHandler{Db: db}
}

func (h positionRepositoryHandler) List() ([]domain.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		ORDER_BY(table.Position.CreatedAt.ASC())

	results := []model.Position{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	out := make([]domain.Position, 0, len(results))
	for _, result := range results {
		out = append(out, positionFromModel(result))
	}
	return out, nil
}

func (h positionRepositoryHandler) Get(positionID uuid.UUID) (*domain.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(table.Position.PositionID.EQ(postgres.UUID(positionID)))

	result := model.Position{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get position %s: %w", positionID, err)
	}

	position := positionFromModel(result)
	return &position, nil
}

func (h positionRepositoryHandler) Add(db qrm.Queryable, position domain.Position) (*domain.Position, error) {
	m := positionToModel(position)
	m.PositionID = uuid.New()
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = m.CreatedAt

	query := table.Position.
		INSERT(table.Position.AllColumns).
		MODEL(m).
		RETURNING(table.Position.AllColumns)

	out := model.Position{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert position: %w", err)
	}

	created := positionFromModel(out)
	return &created, nil
}

func (h positionRepositoryHandler) Update(db qrm.Queryable, position domain.Position) (*domain.Position, error) {
	m := positionToModel(position)
	m.ModifiedAt = time.Now().UTC()

	query := table.Position.
		UPDATE(
			table.Position.Type,
			table.Position.Symbol,
			table.Position.Name,
			table.Position.Quantity,
			table.Position.Cost,
			table.Position.Currency,
			table.Position.Leverage,
			table.Position.ContractMonth,
			table.Position.Multiplier,
			table.Position.AssignedMargin,
			table.Position.ModifiedAt,
		).
		MODEL(m).
		WHERE(table.Position.PositionID.EQ(postgres.UUID(position.PositionID))).
		RETURNING(table.Position.AllColumns)

	out := model.Position{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update position %s: %w", position.PositionID, err)
	}

	updated := positionFromModel(out)
	return &updated, nil
}

func (h positionRepositoryHandler) Delete(db qrm.Executable, positionID uuid.UUID) error {
	query := table.Position.
		DELETE().
		WHERE(table.Position.PositionID.EQ(postgres.UUID(positionID)))

	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete position %s: %w", positionID, err)
	}
	numRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify position delete: %w", err)
	}
	if numRows == 0 {
		return fmt.Errorf("position %s not found", positionID)
	}

	return nil
}

func (h positionRepositoryHandler) GetByContract(db qrm.Queryable, symbol, contractMonth string) (*domain.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(postgres.AND(
			table.Position.Type.EQ(postgres.String(string(domain.PositionType_TwFuture))),
			table.Position.Symbol.EQ(postgres.String(symbol)),
			table.Position.ContractMonth.EQ(postgres.String(contractMonth)),
		)).
		LIMIT(1)

	results := []model.Position{}
	err := query.Query(db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get position for contract %s %s: %w", symbol, contractMonth, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	position := positionFromModel(results[0])
	return &position, nil
}

func positionFromModel(m model.Position) domain.Position {
	return domain.Position{
		PositionID:     m.PositionID,
		Type:           domain.PositionType(m.Type),
		Symbol:         m.Symbol,
		Name:           m.Name,
		Quantity:       m.Quantity,
		Cost:           m.Cost,
		Currency:       domain.Currency(m.Currency),
		Leverage:       m.Leverage,
		ContractMonth:  m.ContractMonth,
		Multiplier:     m.Multiplier,
		AssignedMargin: m.AssignedMargin,
	}
}

func positionToModel(position domain.Position) model.Position {
	return model.Position{
		PositionID:     position.PositionID,
		Type:           string(position.Type),
		Symbol:         position.Symbol,
		Name:           position.Name,
		Quantity:       position.Quantity,
		Cost:           position.Cost,
		Currency:       string(position.Currency),
		Leverage:       position.Leverage,
		ContractMonth:  position.ContractMonth,
		Multiplier:     position.Multiplier,
		AssignedMargin: position.AssignedMargin,
	}
}

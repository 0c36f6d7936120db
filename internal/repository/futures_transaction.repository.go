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

type FuturesTransactionRepository interface {
	List() ([]domain.FuturesTransaction, error)
	Add(db qrm.Queryable, transaction domain.FuturesTransaction) (*domain.FuturesTransaction, error)
	// Exists reports whether a transaction with the same identifying
	// fields was already recorded. used for idempotent imports
	Exists(db qrm.Queryable, transaction domain.FuturesTransaction) (bool, error)
}

type futuresTransactionRepositoryHandler struct {
	Db *sql.DB
}

func NewFuturesTransactionRepository(db *sql.DB) FuturesTransactionRepository {
	return futuresTransactionRepositoryHandler{Db: db}
}

func (h futuresTransactionRepositoryHandler) List() ([]domain.FuturesTransaction, error) {
	query := table.FuturesTransaction.
		SELECT(table.FuturesTransaction.AllColumns).
		ORDER_BY(table.FuturesTransaction.Date.DESC())

	results := []model.FuturesTransaction{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list futures transactions: %w", err)
	}

	out := make([]domain.FuturesTransaction, 0, len(results))
	for _, result := range results {
		out = append(out, transactionFromModel(result))
	}
	return out, nil
}

func (h futuresTransactionRepositoryHandler) Add(db qrm.Queryable, transaction domain.FuturesTransaction) (*domain.FuturesTransaction, error) {
	m := transactionToModel(transaction)
	m.TransactionID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	query := table.FuturesTransaction.
		INSERT(table.FuturesTransaction.AllColumns).
		MODEL(m).
		RETURNING(table.FuturesTransaction.AllColumns)

	out := model.FuturesTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert futures transaction: %w", err)
	}

	created := transactionFromModel(out)
	return &created, nil
}

func (h futuresTransactionRepositoryHandler) Exists(db qrm.Queryable, transaction domain.FuturesTransaction) (bool, error) {
	query := table.FuturesTransaction.
		SELECT(table.FuturesTransaction.TransactionID).
		WHERE(postgres.AND(
			table.FuturesTransaction.Date.EQ(postgres.DateT(transaction.Date)),
			table.FuturesTransaction.Symbol.EQ(postgres.String(transaction.Symbol)),
			table.FuturesTransaction.Action.EQ(postgres.String(string(transaction.Action))),
			table.FuturesTransaction.Price.EQ(postgres.Float(transaction.Price)),
			table.FuturesTransaction.Quantity.EQ(postgres.Float(transaction.Quantity)),
		)).
		LIMIT(1)

	results := []model.FuturesTransaction{}
	err := query.Query(db, &results)
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate transaction: %w", err)
	}

	return len(results) > 0, nil
}

func transactionFromModel(m model.FuturesTransaction) domain.FuturesTransaction {
	out := domain.FuturesTransaction{
		TransactionID:  m.TransactionID,
		Date:           m.Date,
		Symbol:         m.Symbol,
		Action:         domain.TransactionAction(m.Action),
		Price:          m.Price,
		Quantity:       m.Quantity,
		Multiplier:     m.Multiplier,
		Fee:            m.Fee,
		Tax:            m.Tax,
		AssignedMargin: m.AssignedMargin,
	}
	if m.ContractMonth != nil {
		out.ContractMonth = *m.ContractMonth
	}
	return out
}

func transactionToModel(transaction domain.FuturesTransaction) model.FuturesTransaction {
	m := model.FuturesTransaction{
		TransactionID:  transaction.TransactionID,
		Date:           transaction.Date,
		Symbol:         transaction.Symbol,
		Action:         string(transaction.Action),
		Price:          transaction.Price,
		Quantity:       transaction.Quantity,
		Multiplier:     transaction.Multiplier,
		Fee:            transaction.Fee,
		Tax:            transaction.Tax,
		AssignedMargin: transaction.AssignedMargin,
	}
	if transaction.ContractMonth != "" {
		m.ContractMonth = &transaction.ContractMonth
	}
	return m
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"networth/internal/domain"
	"networth/internal/logger"
	"networth/internal/repository"
	"networth/internal/util"
)

type ImportService interface {
	// ImportTransactions replays a CSV of futures transactions. Rows
	// already recorded are skipped, so re-uploading a statement is
	// safe. Row failures are reported per row and do not abort the
	// rest of the file.
	ImportTransactions(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type transactionCsvRow struct {
	Date           string  `csv:"date"`
	Symbol         string  `csv:"symbol"`
	Action         string  `csv:"action"`
	Price          float64 `csv:"price"`
	Quantity       float64 `csv:"quantity"`
	ContractMonth  string  `csv:"contract_month"`
	Multiplier     float64 `csv:"multiplier"`
	Fee            float64 `csv:"fee"`
	Tax            float64 `csv:"tax"`
	AssignedMargin float64 `csv:"assigned_margin"`
}

type importServiceHandler struct {
	Db                           *sql.DB
	FuturesTransactionRepository repository.FuturesTransactionRepository
	PositionRepository           repository.PositionRepository
	RealizedPnlRepository        repository.RealizedPnlRepository
}

func NewImportService(
	db *sql.DB,
	futuresTransactionRepository repository.FuturesTransactionRepository,
	positionRepository repository.PositionRepository,
	realizedPnlRepository repository.RealizedPnlRepository,
) ImportService {
	return importServiceHandler{
		Db:                           db,
		FuturesTransactionRepository: futuresTransactionRepository,
		PositionRepository:           positionRepository,
		RealizedPnlRepository:        realizedPnlRepository,
	}
}

func (h importServiceHandler) ImportTransactions(ctx context.Context, r io.Reader) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	rows := []transactionCsvRow{}
	err := gocsv.Unmarshal(r, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	applier := transactionServiceHandler{
		Db:                           h.Db,
		FuturesTransactionRepository: h.FuturesTransactionRepository,
		PositionRepository:           h.PositionRepository,
		RealizedPnlRepository:        h.RealizedPnlRepository,
	}

	result := ImportResult{Errors: []RowError{}}
	for i, row := range rows {
		// row 1 is the header line
		rowNumber := i + 2

		transaction, err := transactionFromCsvRow(row)
		if err == nil {
			transaction, err = normalizeTransaction(*transaction)
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNumber, Message: err.Error()})
			continue
		}

		// each row gets its own db transaction so one bad row does
		// not poison the rest of the file
		imported, err := h.importRow(log, applier, *transaction)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNumber, Message: err.Error()})
			continue
		}
		if imported {
			result.Imported++
		} else {
			result.Skipped++
		}
	}

	log.Infof("transaction import finished: %d imported, %d skipped, %d errors", result.Imported, result.Skipped, len(result.Errors))
	return &result, nil
}

func (h importServiceHandler) importRow(log *zap.SugaredLogger, applier transactionServiceHandler, transaction domain.FuturesTransaction) (bool, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := h.FuturesTransactionRepository.Exists(tx, transaction)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = applier.applyTransaction(log, tx, transaction)
	if err != nil {
		return false, err
	}

	err = tx.Commit()
	if err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

func transactionFromCsvRow(row transactionCsvRow) (*domain.FuturesTransaction, error) {
	date, err := util.ParseDate(row.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", row.Date, err)
	}

	return &domain.FuturesTransaction{
		Date:           date,
		Symbol:         row.Symbol,
		Action:         domain.TransactionAction(row.Action),
		Price:          row.Price,
		Quantity:       row.Quantity,
		ContractMonth:  row.ContractMonth,
		Multiplier:     row.Multiplier,
		Fee:            row.Fee,
		Tax:            row.Tax,
		AssignedMargin: row.AssignedMargin,
	}, nil
}

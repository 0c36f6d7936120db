package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"networth/internal/domain"
	"networth/internal/futures"
	"networth/internal/logger"
	"networth/internal/repository"
	"networth/internal/util"
)

type TransactionService interface {
	// CreateTransaction records a futures open/close event and applies
	// it to the matching position, in one database transaction.
	CreateTransaction(ctx context.Context, transaction domain.FuturesTransaction) (*domain.FuturesTransaction, error)
	ListTransactions() ([]domain.FuturesTransaction, error)
	EstimateCost(symbol string, price, quantity float64) (*futures.CostEstimate, error)
}

type transactionServiceHandler struct {
	Db                           *sql.DB
	FuturesTransactionRepository repository.FuturesTransactionRepository
	PositionRepository           repository.PositionRepository
	RealizedPnlRepository        repository.RealizedPnlRepository
}

func NewTransactionService(
	db *sql.DB,
	futuresTransactionRepository repository.FuturesTransactionRepository,
	positionRepository repository.PositionRepository,
	realizedPnlRepository repository.RealizedPnlRepository,
) TransactionService {
	return transactionServiceHandler{
		Db:                           db,
		FuturesTransactionRepository: futuresTransactionRepository,
		PositionRepository:           positionRepository,
		RealizedPnlRepository:        realizedPnlRepository,
	}
}

func (h transactionServiceHandler) CreateTransaction(ctx context.Context, transaction domain.FuturesTransaction) (*domain.FuturesTransaction, error) {
	log := logger.FromContext(ctx)

	normalized, err := normalizeTransaction(transaction)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := h.applyTransaction(log, tx, *normalized)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

func (h transactionServiceHandler) ListTransactions() ([]domain.FuturesTransaction, error) {
	return h.FuturesTransactionRepository.List()
}

func (h transactionServiceHandler) EstimateCost(symbol string, price, quantity float64) (*futures.CostEstimate, error) {
	multiplier, ok := futures.ResolveMultiplier(symbol)
	if !ok {
		return nil, fmt.Errorf("unknown futures contract %q", symbol)
	}
	estimate := futures.EstimateCost(price, multiplier, quantity)
	return &estimate, nil
}

// normalizeTransaction validates user input and fills derived fields:
// the contract multiplier and, when absent, the estimated fee and tax.
func normalizeTransaction(transaction domain.FuturesTransaction) (*domain.FuturesTransaction, error) {
	if !transaction.Action.IsValid() {
		return nil, fmt.Errorf("invalid transaction action %q", transaction.Action)
	}
	if transaction.Symbol == "" {
		return nil, fmt.Errorf("transaction symbol is required")
	}
	if transaction.Price <= 0 {
		return nil, fmt.Errorf("transaction price must be positive, got %v", transaction.Price)
	}
	if transaction.Quantity <= 0 {
		return nil, fmt.Errorf("transaction quantity must be positive, got %v", transaction.Quantity)
	}
	if transaction.Date.IsZero() {
		transaction.Date = time.Now().UTC()
	}

	if transaction.Multiplier <= 0 {
		multiplier, ok := futures.ResolveMultiplier(transaction.Symbol)
		if !ok {
			return nil, fmt.Errorf("unknown futures contract %q and no multiplier given", transaction.Symbol)
		}
		transaction.Multiplier = multiplier
	}

	if transaction.Fee == 0 && transaction.Tax == 0 {
		estimate := futures.EstimateCost(transaction.Price, transaction.Multiplier, transaction.Quantity)
		transaction.Fee = estimate.Fee
		transaction.Tax = estimate.Tax
	}

	return &transaction, nil
}

// applyTransaction inserts the event and folds it into the position
// keyed by (symbol, contract month). Opens average the entry cost and
// accumulate margin; closes reduce quantity at unchanged cost and
// record the realized pnl net of fee and tax. The caller owns tx.
func (h transactionServiceHandler) applyTransaction(log *zap.SugaredLogger, tx *sql.Tx, transaction domain.FuturesTransaction) (*domain.FuturesTransaction, error) {
	created, err := h.FuturesTransactionRepository.Add(tx, transaction)
	if err != nil {
		return nil, err
	}

	position, err := h.PositionRepository.GetByContract(tx, transaction.Symbol, transaction.ContractMonth)
	if err != nil {
		return nil, err
	}

	if transaction.Action.IsOpen() {
		err = h.applyOpen(tx, position, transaction)
	} else {
		err = h.applyClose(log, tx, position, transaction)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (h transactionServiceHandler) applyOpen(tx *sql.Tx, position *domain.Position, transaction domain.FuturesTransaction) error {
	signedQuantity := transaction.Action.SignedQuantity(transaction.Quantity)

	if position == nil {
		name := transaction.Symbol
		if transaction.ContractMonth != "" {
			name = fmt.Sprintf("%s %s", transaction.Symbol, transaction.ContractMonth)
		}
		_, err := h.PositionRepository.Add(tx, domain.Position{
			Type:           domain.PositionType_TwFuture,
			Symbol:         util.StringPointer(transaction.Symbol),
			Name:           util.StringPointer(name),
			Quantity:       signedQuantity,
			Cost:           util.FloatPointer(transaction.Price),
			Currency:       domain.Currency_Twd,
			ContractMonth:  contractMonthPointer(transaction.ContractMonth),
			Multiplier:     util.FloatPointer(transaction.Multiplier),
			AssignedMargin: util.FloatPointer(transaction.AssignedMargin),
		})
		return err
	}

	newQuantity := position.Quantity + signedQuantity
	position.Cost = util.FloatPointer(weightedAverageCost(position, transaction, newQuantity))
	position.Quantity = newQuantity
	if transaction.AssignedMargin > 0 {
		margin := transaction.AssignedMargin
		if position.AssignedMargin != nil {
			margin += *position.AssignedMargin
		}
		position.AssignedMargin = util.FloatPointer(margin)
	}

	_, err := h.PositionRepository.Update(tx, *position)
	return err
}

func (h transactionServiceHandler) applyClose(log *zap.SugaredLogger, tx *sql.Tx, position *domain.Position, transaction domain.FuturesTransaction) error {
	if position == nil {
		return fmt.Errorf("no open position for %s %s to close", transaction.Symbol, transaction.ContractMonth)
	}
	if transaction.Quantity > math.Abs(position.Quantity) {
		return fmt.Errorf("cannot close %v contracts of %s, position holds %v", transaction.Quantity, transaction.Symbol, math.Abs(position.Quantity))
	}

	cost := 0.0
	if position.Cost != nil {
		cost = *position.Cost
	}

	// closing a long profits when price > cost; a short, the reverse
	directedQuantity := -transaction.Action.SignedQuantity(transaction.Quantity)
	pnl := (transaction.Price-cost)*directedQuantity*transaction.Multiplier - transaction.Fee - transaction.Tax

	_, err := h.RealizedPnlRepository.Add(tx, domain.RealizedPnl{
		Date:     transaction.Date,
		Symbol:   transaction.Symbol,
		Quantity: transaction.Quantity,
		Pnl:      pnl,
		Notes:    util.StringPointer(fmt.Sprintf("%s %s %s", transaction.Action, transaction.Symbol, transaction.ContractMonth)),
	})
	if err != nil {
		return err
	}

	position.Quantity += transaction.Action.SignedQuantity(transaction.Quantity)
	if position.Quantity == 0 {
		log.Infof("position %s %s fully closed, removing", transaction.Symbol, transaction.ContractMonth)
		return h.PositionRepository.Delete(tx, position.PositionID)
	}

	_, err = h.PositionRepository.Update(tx, *position)
	return err
}

// weightedAverageCost averages the entry cost over absolute contract
// counts, in decimal to keep repeated adds stable.
func weightedAverageCost(position *domain.Position, transaction domain.FuturesTransaction, newQuantity float64) float64 {
	if newQuantity == 0 {
		return 0
	}

	oldCost := decimal.Zero
	if position.Cost != nil {
		oldCost = decimal.NewFromFloat(*position.Cost)
	}
	oldQuantity := decimal.NewFromFloat(math.Abs(position.Quantity))
	addQuantity := decimal.NewFromFloat(transaction.Quantity)
	price := decimal.NewFromFloat(transaction.Price)

	totalCost := oldCost.Mul(oldQuantity).Add(price.Mul(addQuantity))
	return totalCost.Div(decimal.NewFromFloat(math.Abs(newQuantity))).InexactFloat64()
}

func contractMonthPointer(contractMonth string) *string {
	if contractMonth == "" {
		return nil
	}
	return util.StringPointer(contractMonth)
}

package domain

import (
	"github.com/google/uuid"
)

type PositionType string

const (
	PositionType_CashTwd  PositionType = "CASH_TWD"
	PositionType_CashUsd  PositionType = "CASH_USD"
	PositionType_TwStock  PositionType = "TW_STOCK"
	PositionType_UsStock  PositionType = "US_STOCK"
	PositionType_TwFuture PositionType = "TW_FUTURE"
)

type Currency string

const (
	Currency_Twd Currency = "TWD"
	Currency_Usd Currency = "USD"
)

// Currency returns the currency the position is denominated in.
// Cash and stock types derive it from the type itself.
func (t PositionType) Currency() Currency {
	switch t {
	case PositionType_CashUsd, PositionType_UsStock:
		return Currency_Usd
	}
	return Currency_Twd
}

func (t PositionType) IsCash() bool {
	return t == PositionType_CashTwd || t == PositionType_CashUsd
}

func (t PositionType) IsValid() bool {
	switch t {
	case PositionType_CashTwd, PositionType_CashUsd, PositionType_TwStock,
		PositionType_UsStock, PositionType_TwFuture:
		return true
	}
	return false
}

type Position struct {
	PositionID uuid.UUID
	Type       PositionType
	Symbol     *string
	Name       *string
	// signed - negative quantity means short for futures
	Quantity float64
	// average entry price per unit, in the position's native currency.
	// nil for cash positions
	Cost     *float64
	Currency Currency
	// user-assigned exposure multiplier for non-futures positions.
	// 0 for cash, defaults to 1 otherwise
	Leverage float64

	// futures only
	ContractMonth *string // YYYYMM
	Multiplier    *float64
	// capital earmarked for the contract. 0 means the position draws
	// from the remaining margin pool
	AssignedMargin *float64
}

func (p Position) SymbolOrType() string {
	if p.Symbol != nil && *p.Symbol != "" {
		return *p.Symbol
	}
	return string(p.Type)
}

// DisplayLabel is the grouping key used by asset-level allocation:
// symbol, falling back to name, falling back to type.
func (p ValuedPosition) DisplayLabel() string {
	if p.Symbol != nil && *p.Symbol != "" {
		return *p.Symbol
	}
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return string(p.Type)
}

// ValuedPosition is a Position plus the numbers the valuation pass
// derived for it. Nil pointers mean "unavailable", not zero - a stock
// with no market price has nil equity, a cash position has nil pnl.
type ValuedPosition struct {
	PositionID uuid.UUID    `json:"id"`
	Name       *string      `json:"name"`
	Symbol     *string      `json:"symbol"`
	Type       PositionType `json:"type"`
	Quantity   float64      `json:"quantity"`
	Cost       *float64     `json:"cost"`
	Currency   Currency     `json:"currency"`

	CurrentPrice *float64 `json:"current_price"`
	// TWD value persisted into history snapshots. For futures this is
	// the equity, so summing value_twd always reproduces total_twd
	ValueTwd      *float64 `json:"value_twd"`
	Leverage      float64  `json:"leverage"`
	NotionalValue *float64 `json:"notional_value"`
	Equity        *float64 `json:"equity"`
	Pnl           *float64 `json:"pnl"`
	PnlPercentage *float64 `json:"pnl_percentage"`
}

type NetWorthSnapshot struct {
	TotalTwd      float64          `json:"total_twd"`
	TotalUsd      float64          `json:"total_usd"`
	UsdRate       float64          `json:"usd_rate"`
	LeverageRatio float64          `json:"leverage_ratio"`
	Details       []ValuedPosition `json:"details"`
}

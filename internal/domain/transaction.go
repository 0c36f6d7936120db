package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionAction string

const (
	TransactionAction_OpenLong   TransactionAction = "OPEN_LONG"
	TransactionAction_OpenShort  TransactionAction = "OPEN_SHORT"
	TransactionAction_CloseLong  TransactionAction = "CLOSE_LONG"
	TransactionAction_CloseShort TransactionAction = "CLOSE_SHORT"
)

func (a TransactionAction) IsValid() bool {
	switch a {
	case TransactionAction_OpenLong, TransactionAction_OpenShort,
		TransactionAction_CloseLong, TransactionAction_CloseShort:
		return true
	}
	return false
}

func (a TransactionAction) IsOpen() bool {
	return a == TransactionAction_OpenLong || a == TransactionAction_OpenShort
}

// SignedQuantity maps the action onto the position-quantity convention:
// longs add, shorts subtract, closes reverse their open.
func (a TransactionAction) SignedQuantity(quantity float64) float64 {
	switch a {
	case TransactionAction_OpenLong, TransactionAction_CloseShort:
		return quantity
	case TransactionAction_OpenShort, TransactionAction_CloseLong:
		return -quantity
	}
	return quantity
}

// FuturesTransaction is a single open/close event against a futures
// contract. Immutable once created.
type FuturesTransaction struct {
	TransactionID  uuid.UUID         `json:"id"`
	Date           time.Time         `json:"date"`
	Symbol         string            `json:"symbol"`
	Action         TransactionAction `json:"action"`
	Price          float64           `json:"price"`
	Quantity       float64           `json:"quantity"`
	ContractMonth  string            `json:"contract_month"`
	Multiplier     float64           `json:"multiplier"`
	Fee            float64           `json:"fee"`
	Tax            float64           `json:"tax"`
	AssignedMargin float64           `json:"assigned_margin"`
}

type RealizedPnl struct {
	PnlID    uuid.UUID `json:"id"`
	Date     time.Time `json:"date"`
	Symbol   string    `json:"symbol"`
	Quantity float64   `json:"quantity"`
	Pnl      float64   `json:"pnl"`
	Notes    *string   `json:"notes"`
}

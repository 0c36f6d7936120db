package futures

import (
	"strings"

	"github.com/shopspring/decimal"
)

// contract multipliers for the TAIFEX products we track, keyed by
// symbol and common aliases. loaded once - never mutated at runtime.
var contractMultipliers = map[string]float64{
	"QSF":          100,
	"SMALL PHISON": 100,
	"PHISON":       2000,
	"8299":         2000,
	"TX":           200,
	"BIG TAI":      200,
	"MTX":          50,
	"SMALL TAI":    50,
}

// underlyings maps a futures symbol to the symbol we quote for its
// underlying price.
var underlyings = map[string]string{
	"QSF": "8299",
	"TX":  "2330",
	"MTX": "^TWII",
	"ZEF": "2303",
}

// ResolveMultiplier looks up the contract multiplier for a futures
// symbol. Matching is case-insensitive across symbols and aliases.
// An unrecognized symbol returns (0, false) - the caller is expected
// to fall back to a manually supplied multiplier.
func ResolveMultiplier(symbol string) (float64, bool) {
	m, ok := contractMultipliers[strings.ToUpper(strings.TrimSpace(symbol))]
	return m, ok
}

// UnderlyingSymbol returns the quote symbol for a contract's
// underlying, or the input itself when no mapping exists.
func UnderlyingSymbol(symbol string) string {
	if u, ok := underlyings[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return u
	}
	return symbol
}

type CostEstimate struct {
	Fee float64 `json:"fee"`
	Tax float64 `json:"tax"`
}

const (
	// TAIFEX transaction tax on index/equity futures, 0.002% of the
	// contract value per side
	futuresTaxRate = 0.00002
	// flat per-contract brokerage fee placeholder
	perContractFee = 50
)

// EstimateCost derives the fee and transaction tax for a futures trade.
// quantity defaults to 1 when unset or invalid; tax is rounded to the
// nearest integer currency unit. Pure derivation - callers re-invoke it
// whenever price, multiplier or quantity changes, and nothing is
// persisted until the transaction is submitted.
func EstimateCost(price, multiplier, quantity float64) CostEstimate {
	if quantity <= 0 {
		quantity = 1
	}

	tax := decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(multiplier)).
		Mul(decimal.NewFromFloat(quantity)).
		Mul(decimal.NewFromFloat(futuresTaxRate)).
		Round(0)

	return CostEstimate{
		Fee: perContractFee * quantity,
		Tax: tax.InexactFloat64(),
	}
}

package calculator

import (
	"networth/internal/domain"
)

// PriceMap holds the market prices the valuation pass reads from,
// keyed by quote symbol. A missing symbol is a valid state - the
// position is valued as "unavailable", never an error.
type PriceMap map[string]float64

func (p PriceMap) Get(symbol string) (float64, bool) {
	price, ok := p[symbol]
	return price, ok
}

// MarginPolicy decides how much margin backs a futures position whose
// assigned margin is 0 ("use remaining margin pool"). The pool-sharing
// formula is owned by the caller; the valuation only requires that the
// returned margin is positive and no larger than the pool.
type MarginPolicy interface {
	MarginFor(position domain.Position) (float64, bool)
}

// fx multiplier into TWD for a currency
func twdRate(currency domain.Currency, usdRate float64) float64 {
	if currency == domain.Currency_Usd {
		return usdRate
	}
	return 1
}

// ValuePosition computes equity, notional value and unrealized P&L for
// one position. Degenerate arithmetic resolves to 0 or nil, never an
// error; a missing market price leaves the valued fields nil.
func ValuePosition(position domain.Position, usdRate float64, prices PriceMap, marginPolicy MarginPolicy) domain.ValuedPosition {
	out := domain.ValuedPosition{
		PositionID: position.PositionID,
		Name:       position.Name,
		Symbol:     position.Symbol,
		Type:       position.Type,
		Quantity:   position.Quantity,
		Cost:       position.Cost,
		Currency:   position.Currency,
		Leverage:   position.Leverage,
	}

	switch {
	case position.Type.IsCash():
		valueCash(position, usdRate, &out)
	case position.Type == domain.PositionType_TwFuture:
		valueFuture(position, prices, marginPolicy, &out)
	default:
		valueStock(position, usdRate, prices, &out)
	}

	return out
}

func valueCash(position domain.Position, usdRate float64, out *domain.ValuedPosition) {
	rate := twdRate(position.Type.Currency(), usdRate)
	value := position.Quantity * rate

	out.CurrentPrice = floatPtr(rate)
	out.ValueTwd = floatPtr(value)
	out.Equity = floatPtr(value)
	out.NotionalValue = floatPtr(value)
	out.Leverage = 0
}

func valueStock(position domain.Position, usdRate float64, prices PriceMap, out *domain.ValuedPosition) {
	price, ok := prices.Get(position.SymbolOrType())
	if !ok {
		return
	}

	rate := twdRate(position.Type.Currency(), usdRate)
	equity := position.Quantity * price * rate

	// user-assigned multiplier covers margin-style instruments like 2x
	// ETFs; a plain holding carries 1 so notional == equity
	leverage := position.Leverage
	if leverage <= 0 {
		leverage = 1
	}

	out.CurrentPrice = floatPtr(price)
	out.ValueTwd = floatPtr(equity)
	out.Equity = floatPtr(equity)
	out.NotionalValue = floatPtr(equity * leverage)
	out.Leverage = leverage

	if position.Cost == nil {
		return
	}
	totalCost := *position.Cost * position.Quantity * rate
	pnl := equity - totalCost
	out.Pnl = floatPtr(pnl)
	if totalCost != 0 {
		out.PnlPercentage = floatPtr(pnl / totalCost * 100)
	}
}

func valueFuture(position domain.Position, prices PriceMap, marginPolicy MarginPolicy, out *domain.ValuedPosition) {
	price, ok := prices.Get(position.SymbolOrType())
	if !ok {
		return
	}

	multiplier := 1.0
	if position.Multiplier != nil && *position.Multiplier > 0 {
		multiplier = *position.Multiplier
	}
	cost := 0.0
	if position.Cost != nil {
		cost = *position.Cost
	}

	notional := abs(position.Quantity) * price * multiplier
	pnl := (price - cost) * position.Quantity * multiplier

	out.CurrentPrice = floatPtr(price)
	out.NotionalValue = floatPtr(notional)
	out.Pnl = floatPtr(pnl)

	margin := 0.0
	if position.AssignedMargin != nil {
		margin = *position.AssignedMargin
	}
	if margin <= 0 {
		// position draws from the remaining margin pool; the share is
		// an external policy. without one the equity is unavailable
		if marginPolicy == nil {
			return
		}
		poolMargin, ok := marginPolicy.MarginFor(position)
		if !ok || poolMargin <= 0 {
			return
		}
		margin = poolMargin
	}

	equity := margin + pnl
	out.Equity = floatPtr(equity)
	out.ValueTwd = floatPtr(equity)
	if equity > 0 {
		out.Leverage = notional / equity
	} else {
		out.Leverage = 0
	}
	if margin != 0 {
		out.PnlPercentage = floatPtr(pnl / margin * 100)
	}
}

// ComputeSnapshot folds all positions into a portfolio snapshot.
// Details keep the insertion order of the input; display-layer sorting
// is the caller's concern. The computation is pure - identical inputs
// produce identical output.
func ComputeSnapshot(positions []domain.Position, usdRate float64, prices PriceMap, marginPolicy MarginPolicy) domain.NetWorthSnapshot {
	details := make([]domain.ValuedPosition, 0, len(positions))

	totalEquity := 0.0
	totalNotional := 0.0
	for _, position := range positions {
		valued := ValuePosition(position, usdRate, prices, marginPolicy)
		if valued.Equity != nil {
			totalEquity += *valued.Equity
		}
		if valued.NotionalValue != nil {
			totalNotional += *valued.NotionalValue
		}
		details = append(details, valued)
	}

	totalUsd := 0.0
	if usdRate != 0 {
		totalUsd = totalEquity / usdRate
	}

	leverageRatio := 1.0
	if totalEquity > 0 {
		leverageRatio = totalNotional / totalEquity
	}

	return domain.NetWorthSnapshot{
		TotalTwd:      totalEquity,
		TotalUsd:      totalUsd,
		UsdRate:       usdRate,
		LeverageRatio: leverageRatio,
		Details:       details,
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

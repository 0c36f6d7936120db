package calculator

import (
	"testing"

	"networth/internal/domain"
	"networth/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fixedMarginPolicy struct {
	margin float64
}

func (p fixedMarginPolicy) MarginFor(position domain.Position) (float64, bool) {
	if p.margin <= 0 {
		return 0, false
	}
	return p.margin, true
}

func Test_ValuePosition(t *testing.T) {
	t.Run("twd cash", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:     domain.PositionType_CashTwd,
			Quantity: 100000,
			Currency: domain.Currency_Twd,
		}, 32, nil, nil)

		require.Equal(t, float64(100000), *out.Equity)
		require.Equal(t, float64(100000), *out.NotionalValue)
		require.Equal(t, float64(100000), *out.ValueTwd)
		require.Nil(t, out.Pnl)
		require.Nil(t, out.PnlPercentage)
		require.Equal(t, float64(0), out.Leverage)
	})

	t.Run("usd cash converts at fx rate", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:     domain.PositionType_CashUsd,
			Quantity: 1000,
			Currency: domain.Currency_Usd,
		}, 32.5, nil, nil)

		require.Equal(t, float64(32500), *out.Equity)
		require.Equal(t, float64(32500), *out.NotionalValue)
		require.Nil(t, out.Pnl)
	})

	t.Run("tw stock with pnl", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:     domain.PositionType_TwStock,
			Symbol:   util.StringPointer("2330"),
			Quantity: 1000,
			Cost:     util.FloatPointer(500),
			Currency: domain.Currency_Twd,
			Leverage: 1,
		}, 32, PriceMap{"2330": 600}, nil)

		require.Equal(t, float64(600000), *out.Equity)
		require.Equal(t, float64(600000), *out.NotionalValue)
		require.Equal(t, float64(100000), *out.Pnl)
		require.Equal(t, float64(20), *out.PnlPercentage)
	})

	t.Run("us stock converts value and cost at fx rate", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:     domain.PositionType_UsStock,
			Symbol:   util.StringPointer("GGLL"),
			Quantity: 10,
			Cost:     util.FloatPointer(50),
			Currency: domain.Currency_Usd,
			Leverage: 2,
		}, 32, PriceMap{"GGLL": 60}, nil)

		require.Equal(t, float64(19200), *out.Equity)
		// 2x ETF reports doubled exposure
		require.Equal(t, float64(38400), *out.NotionalValue)
		require.Equal(t, float64(3200), *out.Pnl)
		require.InDelta(t, 20, *out.PnlPercentage, 1e-9)
	})

	t.Run("missing market price leaves valued fields nil", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:     domain.PositionType_TwStock,
			Symbol:   util.StringPointer("2330"),
			Quantity: 1000,
			Cost:     util.FloatPointer(500),
			Currency: domain.Currency_Twd,
		}, 32, PriceMap{}, nil)

		require.Nil(t, out.Equity)
		require.Nil(t, out.NotionalValue)
		require.Nil(t, out.Pnl)
		require.Nil(t, out.PnlPercentage)
	})

	t.Run("zero cost stock omits pnl percentage", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:     domain.PositionType_TwStock,
			Symbol:   util.StringPointer("2330"),
			Quantity: 1000,
			Cost:     util.FloatPointer(0),
			Currency: domain.Currency_Twd,
		}, 32, PriceMap{"2330": 600}, nil)

		require.Equal(t, float64(600000), *out.Pnl)
		require.Nil(t, out.PnlPercentage)
	})

	t.Run("future with assigned margin", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:           domain.PositionType_TwFuture,
			Symbol:         util.StringPointer("MTX"),
			Quantity:       1,
			Cost:           util.FloatPointer(16800),
			Currency:       domain.Currency_Twd,
			ContractMonth:  util.StringPointer("202609"),
			Multiplier:     util.FloatPointer(50),
			AssignedMargin: util.FloatPointer(31200),
		}, 32, PriceMap{"MTX": 17000}, nil)

		require.Equal(t, float64(17000*50), *out.NotionalValue)
		require.Equal(t, float64(200*50), *out.Pnl)
		require.Equal(t, float64(31200+10000), *out.Equity)
		require.Equal(t, *out.Equity, *out.ValueTwd)
		require.InDelta(t, 850000.0/41200.0, out.Leverage, 1e-9)
		require.InDelta(t, 10000.0/31200.0*100, *out.PnlPercentage, 1e-9)
	})

	t.Run("short future loses when price rises", func(t *testing.T) {
		out := ValuePosition(domain.Position{
			Type:           domain.PositionType_TwFuture,
			Symbol:         util.StringPointer("MTX"),
			Quantity:       -2,
			Cost:           util.FloatPointer(16800),
			Currency:       domain.Currency_Twd,
			Multiplier:     util.FloatPointer(50),
			AssignedMargin: util.FloatPointer(80000),
		}, 32, PriceMap{"MTX": 17000}, nil)

		// notional uses absolute quantity
		require.Equal(t, float64(2*17000*50), *out.NotionalValue)
		require.Equal(t, float64(-20000), *out.Pnl)
		require.Equal(t, float64(60000), *out.Equity)
	})

	t.Run("unassigned margin defers to the pool policy", func(t *testing.T) {
		position := domain.Position{
			Type:       domain.PositionType_TwFuture,
			Symbol:     util.StringPointer("TX"),
			Quantity:   1,
			Cost:       util.FloatPointer(22000),
			Currency:   domain.Currency_Twd,
			Multiplier: util.FloatPointer(200),
		}

		out := ValuePosition(position, 32, PriceMap{"TX": 22100}, nil)
		require.Nil(t, out.Equity, "no policy - equity unavailable")
		require.NotNil(t, out.NotionalValue)

		out = ValuePosition(position, 32, PriceMap{"TX": 22100}, fixedMarginPolicy{margin: 200000})
		require.Equal(t, float64(200000+100*200), *out.Equity)
	})
}

func Test_ComputeSnapshot(t *testing.T) {
	t.Run("cash plus stock scenario", func(t *testing.T) {
		positions := []domain.Position{
			{
				Type:     domain.PositionType_CashTwd,
				Quantity: 100000,
				Currency: domain.Currency_Twd,
			},
			{
				Type:     domain.PositionType_TwStock,
				Symbol:   util.StringPointer("2330"),
				Quantity: 1000,
				Cost:     util.FloatPointer(500),
				Currency: domain.Currency_Twd,
				Leverage: 1,
			},
		}

		out := ComputeSnapshot(positions, 32, PriceMap{"2330": 600}, nil)

		require.Equal(t, float64(700000), out.TotalTwd)
		require.InDelta(t, 700000.0/32, out.TotalUsd, 1e-9)
		require.Len(t, out.Details, 2)
		require.Equal(t, float64(100000), *out.Details[0].Equity)
		require.Equal(t, float64(600000), *out.Details[1].Equity)
		require.Equal(t, float64(100000), *out.Details[1].Pnl)
		require.Equal(t, float64(20), *out.Details[1].PnlPercentage)
	})

	t.Run("total equals sum of detail equity", func(t *testing.T) {
		positions := []domain.Position{
			{Type: domain.PositionType_CashTwd, Quantity: 50000, Currency: domain.Currency_Twd},
			{Type: domain.PositionType_CashUsd, Quantity: 1000, Currency: domain.Currency_Usd},
			{
				Type:           domain.PositionType_TwFuture,
				Symbol:         util.StringPointer("MTX"),
				Quantity:       1,
				Cost:           util.FloatPointer(17000),
				Currency:       domain.Currency_Twd,
				Multiplier:     util.FloatPointer(50),
				AssignedMargin: util.FloatPointer(31200),
			},
		}

		out := ComputeSnapshot(positions, 32, PriceMap{"MTX": 17100}, nil)

		sum := 0.0
		for _, detail := range out.Details {
			if detail.Equity != nil {
				sum += *detail.Equity
			}
		}
		require.InDelta(t, sum, out.TotalTwd, 1e-9)
	})

	t.Run("leverage ratio defaults to 1 on empty portfolio", func(t *testing.T) {
		out := ComputeSnapshot(nil, 32, nil, nil)
		require.Equal(t, 1.0, out.LeverageRatio)
		require.Equal(t, float64(0), out.TotalTwd)
	})

	t.Run("leverage ratio is notional over equity", func(t *testing.T) {
		positions := []domain.Position{
			{Type: domain.PositionType_CashTwd, Quantity: 100000, Currency: domain.Currency_Twd},
			{
				Type:           domain.PositionType_TwFuture,
				Symbol:         util.StringPointer("MTX"),
				Quantity:       1,
				Cost:           util.FloatPointer(17000),
				Currency:       domain.Currency_Twd,
				Multiplier:     util.FloatPointer(50),
				AssignedMargin: util.FloatPointer(50000),
			},
		}

		out := ComputeSnapshot(positions, 32, PriceMap{"MTX": 17000}, nil)

		totalEquity := 100000.0 + 50000.0
		totalNotional := 100000.0 + 17000*50
		require.InDelta(t, totalNotional/totalEquity, out.LeverageRatio, 1e-9)
	})

	t.Run("zero usd rate guards total usd", func(t *testing.T) {
		out := ComputeSnapshot([]domain.Position{
			{Type: domain.PositionType_CashTwd, Quantity: 1000, Currency: domain.Currency_Twd},
		}, 0, nil, nil)
		require.Equal(t, float64(0), out.TotalUsd)
	})

	t.Run("recomputation is deterministic", func(t *testing.T) {
		positions := []domain.Position{
			{Type: domain.PositionType_CashUsd, Quantity: 250, Currency: domain.Currency_Usd},
			{
				Type:     domain.PositionType_UsStock,
				Symbol:   util.StringPointer("VOO"),
				Quantity: 3,
				Cost:     util.FloatPointer(400),
				Currency: domain.Currency_Usd,
				Leverage: 1,
			},
		}
		prices := PriceMap{"VOO": 480}

		first := ComputeSnapshot(positions, 31.8, prices, nil)
		second := ComputeSnapshot(positions, 31.8, prices, nil)
		require.Empty(t, cmp.Diff(first, second))
	})
}

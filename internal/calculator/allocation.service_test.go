package calculator

import (
	"testing"

	"networth/internal/domain"
	"networth/internal/util"

	"github.com/stretchr/testify/require"
)

func valued(positionType domain.PositionType, symbol string, equity, notional float64) domain.ValuedPosition {
	out := domain.ValuedPosition{
		Type:          positionType,
		Equity:        util.FloatPointer(equity),
		NotionalValue: util.FloatPointer(notional),
	}
	if symbol != "" {
		out.Symbol = util.StringPointer(symbol)
	}
	return out
}

func Test_GroupAllocation(t *testing.T) {
	details := []domain.ValuedPosition{
		valued(domain.PositionType_CashTwd, "", 100000, 100000),
		valued(domain.PositionType_TwStock, "2330", 600000, 600000),
		valued(domain.PositionType_TwStock, "8299", 200000, 200000),
		valued(domain.PositionType_TwFuture, "MTX", 50000, 850000),
	}

	t.Run("groups by type", func(t *testing.T) {
		out := GroupAllocation(details, AllocationDataKey_Equity, AllocationGroupingMode_Type, 950000)

		require.Len(t, out, 3)
		require.Equal(t, "CASH_TWD", out[0].Name)
		require.Equal(t, float64(100000), out[0].Value)
		require.Equal(t, "TW_STOCK", out[1].Name)
		require.Equal(t, float64(800000), out[1].Value)
		require.Equal(t, "TW_FUTURE", out[2].Name)
		require.Equal(t, float64(50000), out[2].Value)
	})

	t.Run("groups by asset with symbol fallback", func(t *testing.T) {
		out := GroupAllocation(details, AllocationDataKey_Equity, AllocationGroupingMode_Asset, 950000)

		require.Len(t, out, 4)
		// cash has no symbol or name, falls back to type
		require.Equal(t, "CASH_TWD", out[0].Name)
		require.Equal(t, "2330", out[1].Name)
		require.Equal(t, "8299", out[2].Name)
		require.Equal(t, "MTX", out[3].Name)
	})

	t.Run("weighted view sums notional", func(t *testing.T) {
		out := GroupAllocation(details, AllocationDataKey_NotionalValue, AllocationGroupingMode_Type, 1750000)

		require.Equal(t, float64(850000), out[2].Value)
		require.InDelta(t, 850000.0/1750000*100, out[2].Percentage, 1e-9)
	})

	t.Run("sum of grouped equity matches sum of inputs", func(t *testing.T) {
		out := GroupAllocation(details, AllocationDataKey_Equity, AllocationGroupingMode_Type, 950000)

		sum := 0.0
		for _, slice := range out {
			sum += slice.Value
		}
		require.InDelta(t, 950000, sum, 1e-9)
	})

	t.Run("drops zero and negative groups", func(t *testing.T) {
		withShort := append([]domain.ValuedPosition{}, details...)
		withShort = append(withShort,
			valued(domain.PositionType_UsStock, "SQQQ", -5000, -5000),
			valued(domain.PositionType_CashUsd, "", 0, 0),
		)

		out := GroupAllocation(withShort, AllocationDataKey_Equity, AllocationGroupingMode_Type, 945000)
		for _, slice := range out {
			require.Greater(t, slice.Value, float64(0))
			require.NotEqual(t, "US_STOCK", slice.Name)
			require.NotEqual(t, "CASH_USD", slice.Name)
		}
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		out := GroupAllocation(details, AllocationDataKey_Equity, AllocationGroupingMode_Type, 0)
		for _, slice := range out {
			require.Equal(t, float64(0), slice.Percentage)
		}
	})

	t.Run("nil valued fields count as zero", func(t *testing.T) {
		unpriced := []domain.ValuedPosition{
			{Type: domain.PositionType_TwStock, Symbol: util.StringPointer("2330")},
		}
		out := GroupAllocation(unpriced, AllocationDataKey_Equity, AllocationGroupingMode_Type, 0)
		require.Empty(t, out)
	})
}

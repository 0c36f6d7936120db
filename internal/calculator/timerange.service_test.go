package calculator

import (
	"testing"
	"time"

	"networth/internal/domain"
	"networth/internal/util"

	"github.com/stretchr/testify/require"
)

func entryOn(year, month, day int) domain.TimeSeriesEntry {
	return domain.TimeSeriesEntry{Date: util.NewDate(year, month, day)}
}

func Test_FilterByRange(t *testing.T) {
	now := util.NewDate(2026, 2, 22)

	t.Run("all returns input unchanged", func(t *testing.T) {
		series := []domain.TimeSeriesEntry{entryOn(2020, 1, 1), entryOn(2026, 1, 1)}
		out := FilterByRange(series, domain.TimeRange_All, now)
		require.Equal(t, series, out)
	})

	t.Run("nil series yields empty slice", func(t *testing.T) {
		require.Empty(t, FilterByRange(nil, domain.TimeRange_All, now))
		require.Empty(t, FilterByRange(nil, domain.TimeRange_ThreeMonths, now))
	})

	t.Run("three month cutoff is inclusive", func(t *testing.T) {
		series := []domain.TimeSeriesEntry{
			entryOn(2025, 11, 21),
			entryOn(2025, 11, 22),
			entryOn(2026, 2, 22),
		}
		out := FilterByRange(series, domain.TimeRange_ThreeMonths, now)

		require.Len(t, out, 2)
		require.Equal(t, util.NewDate(2025, 11, 22), out[0].Date)
		require.Equal(t, util.NewDate(2026, 2, 22), out[1].Date)
	})

	t.Run("one year cutoff is inclusive", func(t *testing.T) {
		series := []domain.TimeSeriesEntry{
			entryOn(2025, 2, 21),
			entryOn(2025, 2, 22),
		}
		out := FilterByRange(series, domain.TimeRange_OneYear, now)

		require.Len(t, out, 1)
		require.Equal(t, util.NewDate(2025, 2, 22), out[0].Date)
	})

	t.Run("cutoff truncates time of day", func(t *testing.T) {
		noon := time.Date(2026, 2, 22, 12, 30, 0, 0, time.UTC)
		series := []domain.TimeSeriesEntry{entryOn(2025, 11, 22)}

		out := FilterByRange(series, domain.TimeRange_ThreeMonths, noon)
		require.Len(t, out, 1)
	})

	t.Run("month-end subtraction normalizes forward", func(t *testing.T) {
		// 2025-05-31 minus 3 months normalizes to 2025-03-03
		endOfMay := util.NewDate(2025, 5, 31)
		series := []domain.TimeSeriesEntry{
			entryOn(2025, 3, 2),
			entryOn(2025, 3, 3),
		}
		out := FilterByRange(series, domain.TimeRange_ThreeMonths, endOfMay)

		require.Len(t, out, 1)
		require.Equal(t, util.NewDate(2025, 3, 3), out[0].Date)
	})

	t.Run("preserves input order without sorting", func(t *testing.T) {
		series := []domain.TimeSeriesEntry{
			entryOn(2026, 2, 1),
			entryOn(2025, 12, 15),
			entryOn(2026, 1, 10),
		}
		out := FilterByRange(series, domain.TimeRange_ThreeMonths, now)

		require.Len(t, out, 3)
		require.Equal(t, series, out)
	})
}

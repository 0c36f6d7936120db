package twse_client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_closingPriceFromRow(t *testing.T) {
	t.Run("parses closing price with thousands separators", func(t *testing.T) {
		row := []string{"115/08/29", "33,013,158", "38,847,095,397", "1,185.00", "1,190.00", "1,175.00", "1,180.00", "-5.00", "25,316"}
		price, err := closingPriceFromRow(row)
		require.NoError(t, err)
		require.Equal(t, 1180.0, price)
	})

	t.Run("short row is an error", func(t *testing.T) {
		_, err := closingPriceFromRow([]string{"115/08/29", "100"})
		require.Error(t, err)
	})

	t.Run("non-numeric close is an error", func(t *testing.T) {
		row := []string{"", "", "", "", "", "", "--", "", ""}
		_, err := closingPriceFromRow(row)
		require.Error(t, err)
	})
}

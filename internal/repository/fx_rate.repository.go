package repository

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
)

// FxRateRepository provides the current USD/TWD rate (TWD per USD).
type FxRateRepository interface {
	GetUsdTwdRate() (float64, error)
}

const usdTwdSymbol = "TWD=X"

type fxRateRepositoryHandler struct{}

func NewFxRateRepository() FxRateRepository {
	return fxRateRepositoryHandler{}
}

func (h fxRateRepositoryHandler) GetUsdTwdRate() (float64, error) {
	q, err := quote.Get(usdTwdSymbol)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch usd/twd rate: %w", err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return 0, fmt.Errorf("no usd/twd quote available")
	}

	return q.RegularMarketPrice, nil
}

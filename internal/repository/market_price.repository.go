package repository

import (
	"fmt"

	"networth/internal/domain"
	"networth/internal/futures"
	twse_client "networth/pkg/twse"

	"github.com/piquette/finance-go/quote"
)

// MarketPriceRepository resolves current prices for stocks and futures
// underlyings. A missing price is a normal outcome the valuation layer
// tolerates, so callers should treat errors as "price unavailable"
// rather than fatal.
type MarketPriceRepository interface {
	GetPrice(symbol string, positionType domain.PositionType) (float64, error)
}

type marketPriceRepositoryHandler struct{}

func NewMarketPriceRepository() MarketPriceRepository {
	return marketPriceRepositoryHandler{}
}

func (h marketPriceRepositoryHandler) GetPrice(symbol string, positionType domain.PositionType) (float64, error) {
	switch positionType {
	case domain.PositionType_UsStock:
		return usQuote(symbol)
	case domain.PositionType_TwStock:
		return twPrice(symbol)
	case domain.PositionType_TwFuture:
		// contracts are priced off their underlying
		return twPrice(futures.UnderlyingSymbol(symbol))
	}
	return 0, fmt.Errorf("no market price source for position type %s", positionType)
}

func usQuote(symbol string) (float64, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return 0, fmt.Errorf("no quote available for %s", symbol)
	}
	return q.RegularMarketPrice, nil
}

// twPrice tries the quote feed with the .TW and .TWO suffixes first,
// then falls back to the TWSE exchange report. Index symbols (^TWII)
// only exist on the quote feed.
func twPrice(symbol string) (float64, error) {
	if len(symbol) > 0 && symbol[0] == '^' {
		return usQuote(symbol)
	}

	var lastErr error
	for _, suffix := range []string{".TW", ".TWO"} {
		price, err := usQuote(symbol + suffix)
		if err == nil {
			return price, nil
		}
		lastErr = err
	}

	price, err := twse_client.GetClosingPrice(symbol)
	if err == nil {
		return price, nil
	}

	return 0, fmt.Errorf("all price sources failed for %s: %w (quote feed: %s)", symbol, err, lastErr)
}

package collector

import (
	"context"

	"DivergenceScout/internal/model"
)

// Fetcher defines the interface for fetching market data. Lookback is a
// provider range token such as "1mo", "3mo" or "1y"; implementations may
// return fewer bars than the range nominally covers.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol, lookback string) ([]model.OHLCV, error)
	Name() string
}

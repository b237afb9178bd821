package collector

import (
	"context"
	"time"

	"DivergenceScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Bars maps symbols to canned series; Errs maps symbols to injected failures.
// Symbols absent from both get a generated drifting series of Count bars.
type MockFetcher struct {
	Bars  map[string][]model.OHLCV
	Errs  map[string]error
	Price float64
	Count int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol, _ string) ([]model.OHLCV, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	count := m.Count
	if count == 0 {
		count = 60
	}
	price := m.Price
	if price == 0 {
		price = 100
	}
	return generateMockBars(price, count), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

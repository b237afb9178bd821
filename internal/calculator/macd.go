package calculator

import (
	"fmt"

	"DivergenceScout/internal/model"
)

// Default MACD spans.
const (
	DefaultFastSpan   = 12
	DefaultSlowSpan   = 26
	DefaultSignalSpan = 9
)

// CalculateMACD derives the MACD component series from closing prices:
// DIF = EMA(fast) - EMA(slow), DEA = EMA(DIF, signal), Histogram = 2*(DIF-DEA).
// All three output series have the same length as the input. Deterministic
// and stateless: identical input yields bit-identical output.
func CalculateMACD(closes []float64, fastSpan, slowSpan, signalSpan int) (*model.MACDSeries, error) {
	if fastSpan < 1 || slowSpan < 1 || signalSpan < 1 {
		return nil, fmt.Errorf("spans must be positive: fast=%d slow=%d signal=%d", fastSpan, slowSpan, signalSpan)
	}
	if fastSpan >= slowSpan {
		return nil, fmt.Errorf("fast span must be shorter than slow span: %d >= %d", fastSpan, slowSpan)
	}

	fast, err := CalculateEMA(closes, fastSpan)
	if err != nil {
		return nil, fmt.Errorf("fast EMA: %w", err)
	}
	slow, err := CalculateEMA(closes, slowSpan)
	if err != nil {
		return nil, fmt.Errorf("slow EMA: %w", err)
	}

	dif := make([]float64, len(closes))
	for i := range closes {
		dif[i] = fast[i] - slow[i]
	}

	dea, err := CalculateEMA(dif, signalSpan)
	if err != nil {
		return nil, fmt.Errorf("signal EMA: %w", err)
	}

	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = 2 * (dif[i] - dea[i])
	}

	return &model.MACDSeries{DIF: dif, DEA: dea, Histogram: hist}, nil
}

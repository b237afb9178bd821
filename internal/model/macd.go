package model

// MACDSeries holds the three MACD component series, each the same length as
// the closing-price series it was derived from. Index i of every slice
// corresponds to bar i of the input.
type MACDSeries struct {
	DIF       []float64 // fast EMA minus slow EMA
	DEA       []float64 // signal line: EMA of DIF
	Histogram []float64 // 2 * (DIF - DEA)
}

// Len returns the series length.
func (m *MACDSeries) Len() int { return len(m.Histogram) }

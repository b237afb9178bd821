package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEMA_SeedAndRecursion(t *testing.T) {
	values := []float64{10, 20, 30}
	ema, err := CalculateEMA(values, 3)
	require.NoError(t, err)
	require.Len(t, ema, 3)

	// Seeded with the first value, then ema[i] = ema[i-1] + 0.5*(x[i]-ema[i-1]).
	assert.Equal(t, 10.0, ema[0])
	assert.Equal(t, 15.0, ema[1])
	assert.Equal(t, 22.5, ema[2])
}

func TestCalculateEMA_Invalid(t *testing.T) {
	_, err := CalculateEMA(nil, 12)
	assert.Error(t, err)

	_, err = CalculateEMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestCalculateMACD_ConstantSeriesConverges(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 250.0
	}

	macd, err := CalculateMACD(closes, DefaultFastSpan, DefaultSlowSpan, DefaultSignalSpan)
	require.NoError(t, err)
	require.Equal(t, len(closes), macd.Len())

	// Both EMAs equal the constant at every index, so DIF and Histogram are
	// exactly zero throughout, not merely converging.
	for i := range closes {
		assert.Equal(t, 0.0, macd.DIF[i], "DIF at %d", i)
		assert.Equal(t, 0.0, macd.Histogram[i], "histogram at %d", i)
	}
}

func TestCalculateMACD_Deterministic(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/4)
	}

	first, err := CalculateMACD(closes, 12, 26, 9)
	require.NoError(t, err)
	second, err := CalculateMACD(closes, 12, 26, 9)
	require.NoError(t, err)

	// Bit-identical, no retained state between calls.
	assert.Equal(t, first.DIF, second.DIF)
	assert.Equal(t, first.DEA, second.DEA)
	assert.Equal(t, first.Histogram, second.Histogram)
}

func TestCalculateMACD_Alignment(t *testing.T) {
	closes := []float64{100, 101, 99, 98, 102, 103, 101, 100}
	macd, err := CalculateMACD(closes, 3, 6, 2)
	require.NoError(t, err)

	require.Len(t, macd.DIF, len(closes))
	require.Len(t, macd.DEA, len(closes))
	require.Len(t, macd.Histogram, len(closes))

	for i := range closes {
		assert.Equal(t, 2*(macd.DIF[i]-macd.DEA[i]), macd.Histogram[i], "histogram relation at %d", i)
	}
}

func TestCalculateMACD_InvalidSpans(t *testing.T) {
	closes := []float64{1, 2, 3}

	_, err := CalculateMACD(closes, 26, 12, 9)
	assert.Error(t, err)

	_, err = CalculateMACD(closes, 0, 26, 9)
	assert.Error(t, err)
}

package calculator

import "errors"

// CalculateEMA computes the exponential moving average of values with
// smoothing factor alpha = 2/(span+1). The average is seeded with the first
// input value, so the output has the same length as the input and no warm-up
// gap. This matches the recursive form ema[i] = ema[i-1] + alpha*(x[i]-ema[i-1]).
func CalculateEMA(values []float64, span int) ([]float64, error) {
	if span < 1 {
		return nil, errors.New("span must be positive")
	}
	if len(values) == 0 {
		return nil, errors.New("no values provided")
	}
	alpha := 2.0 / float64(span+1)
	ema := make([]float64, len(values))
	ema[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema[i] = ema[i-1] + alpha*(values[i]-ema[i-1])
	}
	return ema, nil
}

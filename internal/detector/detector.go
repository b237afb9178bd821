// Package detector implements the bullish-divergence test: the trigger bar
// makes the lowest low of a trailing window while the MACD histogram holds
// above its prior window minimum.
package detector

import (
	"fmt"
	"math"

	"DivergenceScout/internal/model"
)

// Default parameters.
const (
	DefaultWindowSize = 10
	DefaultMinBars    = 30
)

// Detector evaluates one instrument's aligned price and MACD series.
type Detector struct {
	WindowSize int // bars preceding the trigger bar in the comparison window
	MinBars    int // minimum series length before detection is attempted
}

// New creates a Detector. Non-positive arguments fall back to the defaults
// (window=10, floor=30).
func New(windowSize, minBars int) *Detector {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	if minBars <= 0 {
		minBars = DefaultMinBars
	}
	return &Detector{WindowSize: windowSize, MinBars: minBars}
}

// Detect runs the divergence test over aligned bar and MACD series. The last
// bar is the trigger bar. Rejections (insufficient data, not a local low,
// histogram not rising) are ordinary verdicts, not errors; a non-nil error
// means the caller violated the alignment contract and indicates a defect.
func (d *Detector) Detect(bars []model.OHLCV, macd *model.MACDSeries) (*model.Verdict, error) {
	if macd == nil || len(bars) != macd.Len() {
		got := 0
		if macd != nil {
			got = macd.Len()
		}
		return nil, fmt.Errorf("misaligned series: %d bars vs %d MACD values", len(bars), got)
	}

	if len(bars) < d.MinBars {
		return model.Reject(model.ReasonInsufficientData,
			fmt.Sprintf("need at least %d bars, have %d", d.MinBars, len(bars))), nil
	}
	if d.WindowSize < 1 {
		return model.Reject(model.ReasonInsufficientData,
			fmt.Sprintf("window size must be at least 1, got %d", d.WindowSize)), nil
	}
	if len(bars) < d.WindowSize+1 {
		return model.Reject(model.ReasonInsufficientData,
			fmt.Sprintf("need %d bars for a %d-bar window, have %d", d.WindowSize+1, d.WindowSize, len(bars))), nil
	}

	// Trailing window: the trigger bar plus WindowSize predecessors.
	start := len(bars) - (d.WindowSize + 1)
	window := bars[start:]
	hist := macd.Histogram[start:]
	trigger := len(window) - 1

	// The trigger bar's low must equal the window minimum exactly. This is a
	// strict bit-for-bit comparison on the fetched values: no tolerance band
	// is applied, so a low recomputed with different rounding upstream will
	// not match. Callers wanting near-miss matching must pre-quantize.
	currentLow := window[trigger].Low
	minLow := currentLow
	for _, b := range window {
		if b.Low < minLow {
			minLow = b.Low
		}
	}
	if currentLow != minLow {
		return model.Reject(model.ReasonNotLocalLow,
			fmt.Sprintf("low %.4f above window minimum %.4f", currentLow, minLow)), nil
	}

	// Histogram minimum over the window excluding the trigger bar. Strictly
	// less-than keeps the earliest occurrence on ties.
	prevHistMin := hist[0]
	prevHistMinIdx := 0
	for i := 1; i < trigger; i++ {
		if hist[i] < prevHistMin {
			prevHistMin = hist[i]
			prevHistMinIdx = i
		}
	}

	currentHist := hist[trigger]
	if currentHist <= prevHistMin {
		return model.Reject(model.ReasonHistogramNotRising,
			fmt.Sprintf("histogram %.4f not above prior minimum %.4f", currentHist, prevHistMin)), nil
	}

	improvement := 0.0
	if prevHistMin != 0 {
		improvement = (currentHist - prevHistMin) / math.Abs(prevHistMin) * 100
	}

	triggerIdx := len(bars) - 1
	return &model.Verdict{Finding: &model.Finding{
		Date:            window[trigger].Time,
		Close:           window[trigger].Close,
		Low:             currentLow,
		Histogram:       currentHist,
		DIF:             macd.DIF[triggerIdx],
		DEA:             macd.DEA[triggerIdx],
		PrevHistMin:     prevHistMin,
		PrevHistMinDate: window[prevHistMinIdx].Time,
		ImprovementPct:  improvement,
	}}, nil
}

package model

import "time"

// RejectReason classifies why a symbol produced no finding.
type RejectReason string

const (
	// ReasonInsufficientData means fewer bars were available than the
	// detector's minimum floor.
	ReasonInsufficientData RejectReason = "insufficient_data"
	// ReasonNotLocalLow means the trigger bar is not the lowest low of the
	// trailing window.
	ReasonNotLocalLow RejectReason = "not_local_low"
	// ReasonHistogramNotRising means the trigger histogram did not exceed the
	// prior window minimum.
	ReasonHistogramNotRising RejectReason = "histogram_not_rising"
)

// Finding describes one confirmed bullish divergence. Immutable once produced.
type Finding struct {
	Symbol          string
	Date            time.Time // trigger bar date
	Close           float64   // trigger bar close
	Low             float64   // trigger bar low
	Histogram       float64   // MACD histogram at the trigger
	DIF             float64   // fast-minus-slow line at the trigger
	DEA             float64   // signal line at the trigger
	PrevHistMin     float64   // minimum histogram over the preceding window
	PrevHistMinDate time.Time // date of that minimum, earliest occurrence on ties
	ImprovementPct  float64   // histogram improvement relative to |PrevHistMin|
}

// MACDState labels the fast/slow-line relationship at the trigger bar.
func (f *Finding) MACDState() string {
	if f.DIF > f.DEA {
		return "Bullish GC"
	}
	return "Bearish"
}

// Verdict is the detector's result for one symbol: either a Finding, or a
// rejection with a tagged reason and a diagnostic detail.
type Verdict struct {
	Reason  RejectReason
	Detail  string
	Finding *Finding
}

// Found reports whether the verdict carries a finding.
func (v *Verdict) Found() bool { return v.Finding != nil }

// Reject builds a rejection verdict.
func Reject(reason RejectReason, detail string) *Verdict {
	return &Verdict{Reason: reason, Detail: detail}
}

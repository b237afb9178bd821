package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DivergenceScout/internal/model"
)

func finding(symbol string, pct float64) *model.Finding {
	return &model.Finding{
		Symbol:         symbol,
		Date:           time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC),
		Close:          1234.5,
		Low:            1200.0,
		Histogram:      1.5,
		DIF:            2.0,
		DEA:            0.5,
		PrevHistMin:    -3.0,
		ImprovementPct: pct,
	}
}

func TestSort_DescendingByImprovement(t *testing.T) {
	r := &Report{}
	r.Add(finding("A.T", 5.0))
	r.Add(finding("B.T", 20.0))
	r.Add(finding("C.T", 1.0))
	r.Sort()

	require.Len(t, r.Findings, 3)
	assert.Equal(t, []float64{20.0, 5.0, 1.0}, []float64{
		r.Findings[0].ImprovementPct,
		r.Findings[1].ImprovementPct,
		r.Findings[2].ImprovementPct,
	})
}

func TestSort_TieBrokenBySymbol(t *testing.T) {
	r := &Report{}
	r.Add(finding("B.T", 5.0))
	r.Add(finding("A.T", 5.0))
	r.Sort()

	assert.Equal(t, "A.T", r.Findings[0].Symbol)
	assert.Equal(t, "B.T", r.Findings[1].Symbol)
}

func TestFormat_RankedTable(t *testing.T) {
	r := &Report{
		ScanTime:      time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC),
		WatchlistSize: 3,
		WindowSize:    10,
	}
	r.Add(finding("7203.T", 12.5))
	r.Sort()

	out := r.Format()
	assert.Contains(t, out, "Found 1 bullish divergence candidates")
	assert.Contains(t, out, "7203.T")
	assert.Contains(t, out, "2025-08-22")
	assert.Contains(t, out, "Bullish GC") // DIF above DEA at the trigger

	header := r.FormatHeader()
	assert.Contains(t, header, "Watchlist size: 3")
	assert.Contains(t, header, "last 10 bars")
}

func TestFormat_NoCandidates(t *testing.T) {
	r := &Report{ScanTime: time.Now(), WatchlistSize: 5, WindowSize: 10}
	out := r.Format()
	assert.Contains(t, out, "Found 0 bullish divergence candidates")
	assert.Contains(t, out, "No candidates found")
}

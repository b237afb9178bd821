// Package report renders scan results as a ranked console table.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"DivergenceScout/internal/model"
)

const rule = "--------------------------------------------------------------------------------"

// Report aggregates one scan's findings for rendering. Findings are kept
// sorted descending by improvement percentage.
type Report struct {
	ScanTime      time.Time
	WatchlistSize int
	WindowSize    int
	Findings      []*model.Finding
	Skipped       int
}

// Add appends a finding; call Sort before rendering.
func (r *Report) Add(f *model.Finding) {
	r.Findings = append(r.Findings, f)
}

// Sort orders findings descending by improvement percentage. Ties fall back
// to the symbol so the report is deterministic regardless of scan order.
func (r *Report) Sort() {
	sort.Slice(r.Findings, func(i, j int) bool {
		a, b := r.Findings[i], r.Findings[j]
		if a.ImprovementPct != b.ImprovementPct {
			return a.ImprovementPct > b.ImprovementPct
		}
		return a.Symbol < b.Symbol
	})
}

// FormatHeader renders the banner printed before the per-symbol scan lines.
func (r *Report) FormatHeader() string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("Daily MACD Bullish Divergence Scanner\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Scan time: %s\n", r.ScanTime.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Watchlist size: %d\n", r.WatchlistSize))
	b.WriteString(fmt.Sprintf("Logic: lowest low in last %d bars + rising MACD histogram\n", r.WindowSize))
	b.WriteString(rule)
	return b.String()
}

// Format renders the ranked candidate table.
func (r *Report) Format() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d bullish divergence candidates\n\n", len(r.Findings)))

	if len(r.Findings) == 0 {
		b.WriteString("No candidates found\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%-8s %-12s %-10s %-10s %-14s %-10s %s\n",
		"Ticker", "Date", "Price", "Hist", "PrevMinHist", "Improve%", "MACD"))
	b.WriteString(rule + "\n")

	for _, f := range r.Findings {
		b.WriteString(fmt.Sprintf("%-8s %-12s %-10.2f %-10.3f %-14.3f +%-9.1f %s\n",
			f.Symbol,
			f.Date.Format("2006-01-02"),
			f.Close,
			f.Histogram,
			f.PrevHistMin,
			f.ImprovementPct,
			f.MACDState()))
	}

	return b.String()
}

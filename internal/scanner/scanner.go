// Package scanner runs the per-symbol pipeline (fetch, MACD, divergence
// detection) over a watchlist and aggregates findings into a ranked report.
package scanner

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"DivergenceScout/internal/calculator"
	"DivergenceScout/internal/collector"
	"DivergenceScout/internal/config"
	"DivergenceScout/internal/detector"
	"DivergenceScout/internal/model"
	"DivergenceScout/internal/report"
)

// Outcome is one symbol's scan result: a verdict, or a pipeline error.
type Outcome struct {
	Symbol  string
	Verdict *model.Verdict
	Err     error
}

// Scanner orchestrates the full watchlist scan.
type Scanner struct {
	Fetcher  collector.Fetcher
	Detector *detector.Detector

	watchlist   []string
	lookback    string
	concurrency int
	fastSpan    int
	slowSpan    int
	signalSpan  int
}

// New creates a Scanner from the application config.
func New(fetcher collector.Fetcher, cfg *config.Config) *Scanner {
	return &Scanner{
		Fetcher:     fetcher,
		Detector:    detector.New(cfg.Scan.WindowSize, cfg.Scan.MinBars),
		watchlist:   cfg.Watchlist,
		lookback:    cfg.Scan.Lookback,
		concurrency: cfg.Scan.Concurrency,
		fastSpan:    cfg.MACD.FastSpan,
		slowSpan:    cfg.MACD.SlowSpan,
		signalSpan:  cfg.MACD.SignalSpan,
	}
}

// Scan evaluates every watchlist symbol and returns the ranked report. Each
// symbol is independent: a fetch failure or rejection only removes that
// symbol from the candidate set. Symbols are processed by a bounded worker
// pool; with concurrency 1 the scan is strictly sequential. The final
// ordering is deterministic regardless of completion order.
func (s *Scanner) Scan(ctx context.Context) *report.Report {
	rep := &report.Report{
		ScanTime:      time.Now(),
		WatchlistSize: len(s.watchlist),
		WindowSize:    s.Detector.WindowSize,
	}

	jobs := make(chan string)
	results := make(chan Outcome)

	var wg sync.WaitGroup
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range jobs {
				if ctx.Err() != nil {
					return
				}
				verdict, err := s.Evaluate(ctx, symbol)
				select {
				case results <- Outcome{Symbol: symbol, Verdict: verdict, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, symbol := range s.watchlist {
			select {
			case jobs <- symbol:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for out := range results {
		switch {
		case out.Err != nil:
			log.Printf("[WARN] %s: fetch failed: %v", out.Symbol, out.Err)
			rep.Skipped++
		case out.Verdict.Found():
			f := out.Verdict.Finding
			log.Printf("[INFO] %s: bullish divergence (improve %+.1f%%)", out.Symbol, f.ImprovementPct)
			rep.Add(f)
		default:
			log.Printf("[INFO] %s: %s (%s)", out.Symbol, out.Verdict.Reason, out.Verdict.Detail)
			rep.Skipped++
		}
	}

	rep.Sort()
	return rep
}

// Evaluate runs the single-symbol pipeline: fetch the trailing daily history,
// derive the MACD series, and apply the divergence test.
func (s *Scanner) Evaluate(ctx context.Context, symbol string) (*model.Verdict, error) {
	bars, err := s.Fetcher.FetchDailyBars(ctx, symbol, s.lookback)
	if err != nil {
		return nil, err
	}

	series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	if series.Len() < s.Detector.MinBars {
		return model.Reject(model.ReasonInsufficientData,
			fmt.Sprintf("need at least %d bars, have %d", s.Detector.MinBars, series.Len())), nil
	}

	macd, err := calculator.CalculateMACD(series.Closes(), s.fastSpan, s.slowSpan, s.signalSpan)
	if err != nil {
		return nil, err
	}

	verdict, err := s.Detector.Detect(series.Bars, macd)
	if err != nil {
		return nil, err
	}
	verdict = tagSymbol(verdict, symbol)
	return verdict, nil
}

func tagSymbol(v *model.Verdict, symbol string) *model.Verdict {
	if v.Finding != nil {
		v.Finding.Symbol = symbol
	}
	return v
}

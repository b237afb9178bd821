package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"DivergenceScout/internal/notifier"
	"DivergenceScout/internal/scanner"
)

// Scheduler runs the watchlist scan on a cron schedule (daemon mode).
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Notifier notifier.Notifier
	Ctx      context.Context
}

// NewScheduler creates a Scheduler. Cron specs use the six-field form with
// seconds, e.g. "0 30 8 * * 1-5" for 08:30 on weekdays.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, n notifier.Notifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Notifier: n,
		Ctx:      ctx,
	}
}

// Register adds the scan task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.RunNow); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start begins cron scheduling.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop halts cron scheduling.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one scheduled scan: prints the report and pushes it to the
// notifier. Notification failure is logged, never fatal.
func (s *Scheduler) RunNow() {
	rep := s.Scanner.Scan(s.Ctx)
	if s.Ctx.Err() != nil {
		log.Println("[WARN] scan interrupted, skipping report")
		return
	}

	text := rep.Format()
	fmt.Println(rep.FormatHeader())
	fmt.Println(text)

	if err := s.Notifier.SendReport(s.Ctx, text); err != nil {
		log.Printf("[WARN] report notification failed: %v", err)
	}
}

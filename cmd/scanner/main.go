package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"DivergenceScout/internal/collector"
	"DivergenceScout/internal/config"
	"DivergenceScout/internal/notifier"
	"DivergenceScout/internal/scanner"
	"DivergenceScout/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.Println("[INFO] DivergenceScout starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	sc := scanner.New(fetcher, cfg)

	var n notifier.Notifier = notifier.NewNoopNotifier()
	if cfg.Telegram.BotToken != "" {
		n = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}
	log.Printf("[INFO] notifier: %s", n.Name())

	// Context canceled on operator interruption
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
	}()

	// Run-once mode: a single scan, then exit 0 with or without candidates.
	if cfg.Schedule.Cron == "" {
		rep := sc.Scan(ctx)
		if ctx.Err() != nil {
			fmt.Println("\nProcess stopped by user")
			return
		}
		fmt.Println(rep.FormatHeader())
		fmt.Println(rep.Format())
		if err := n.SendReport(ctx, rep.Format()); err != nil {
			log.Printf("[WARN] report notification failed: %v", err)
		}
		return
	}

	// Daemon mode: scan on the configured cron schedule.
	sched := scheduler.NewScheduler(ctx, sc, n)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunNow()
	}

	log.Printf("[INFO] DivergenceScout is running on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)
	<-ctx.Done()
	log.Println("[INFO] DivergenceScout stopped")
}

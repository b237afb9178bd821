package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"DivergenceScout/internal/collector"
)

// DefaultWatchlist is the built-in Tokyo Stock Exchange watchlist.
var DefaultWatchlist = []string{
	"6723.T", "9432.T", "7011.T", "7203.T", "8058.T", "8306.T", "9501.T", "285A.T",
	"6758.T", "9434.T", "2760.T", "9984.T", "8035.T", "9503.T", "4324.T", "9433.T",
	"7272.T", "6367.T", "6146.T", "6269.T", "6501.T", "8316.T", "5706.T", "5016.T",
	"7974.T", "7013.T", "4063.T", "4502.T", "6762.T", "6361.T", "6503.T", "8053.T",
	"7267.T", "6981.T", "6702.T", "8002.T", "4568.T", "9502.T", "1911.T", "5802.T",
}

// Config holds all application configuration.
type Config struct {
	Watchlist []string `yaml:"watchlist"`
	Scan      struct {
		WindowSize  int    `yaml:"window_size"` // bars preceding the trigger bar
		MinBars     int    `yaml:"min_bars"`    // minimum history before detection
		Lookback    string `yaml:"lookback"`    // Yahoo range token
		Concurrency int    `yaml:"concurrency"` // parallel symbol fetches, 1 = sequential
	} `yaml:"scan"`
	MACD struct {
		FastSpan   int `yaml:"fast_span"`
		SlowSpan   int `yaml:"slow_span"`
		SignalSpan int `yaml:"signal_span"`
	} `yaml:"macd"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty = run once and exit
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from an optional .env file and a YAML file, then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	// .env is optional; system environment wins when both are set.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = splitList(v)
	}
	if v := os.Getenv("SCAN_LOOKBACK"); v != "" {
		cfg.Scan.Lookback = v
	}
	if v := os.Getenv("SCAN_WINDOW_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.WindowSize = n
		}
	}
	if v := os.Getenv("SCAN_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Concurrency = n
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults: window=10, floor=30, lookback=3mo
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = DefaultWatchlist
	}
	if cfg.Scan.WindowSize == 0 {
		cfg.Scan.WindowSize = 10
	}
	if cfg.Scan.MinBars == 0 {
		cfg.Scan.MinBars = 30
	}
	if cfg.Scan.Lookback == "" {
		cfg.Scan.Lookback = "3mo"
	}
	if cfg.Scan.Concurrency == 0 {
		cfg.Scan.Concurrency = 4
	}
	if cfg.MACD.FastSpan == 0 {
		cfg.MACD.FastSpan = 12
	}
	if cfg.MACD.SlowSpan == 0 {
		cfg.MACD.SlowSpan = 26
	}
	if cfg.MACD.SignalSpan == 0 {
		cfg.MACD.SignalSpan = 9
	}

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	if c.Scan.WindowSize < 1 {
		return fmt.Errorf("scan.window_size must be at least 1, got %d", c.Scan.WindowSize)
	}
	if c.Scan.MinBars <= c.Scan.WindowSize {
		return fmt.Errorf("scan.min_bars (%d) must exceed scan.window_size (%d)", c.Scan.MinBars, c.Scan.WindowSize)
	}
	if c.Scan.Concurrency < 1 {
		return fmt.Errorf("scan.concurrency must be at least 1, got %d", c.Scan.Concurrency)
	}
	if !collector.ValidLookbacks[c.Scan.Lookback] {
		return fmt.Errorf("scan.lookback %q is not a valid range token", c.Scan.Lookback)
	}
	if c.MACD.FastSpan < 1 || c.MACD.SlowSpan < 1 || c.MACD.SignalSpan < 1 {
		return fmt.Errorf("macd spans must be positive")
	}
	if c.MACD.FastSpan >= c.MACD.SlowSpan {
		return fmt.Errorf("macd.fast_span (%d) must be shorter than macd.slow_span (%d)", c.MACD.FastSpan, c.MACD.SlowSpan)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

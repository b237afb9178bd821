package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearScanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WATCHLIST", "SCAN_LOOKBACK", "SCAN_WINDOW_SIZE", "SCAN_CONCURRENCY",
		"SCAN_CRON", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "HTTPS_PROXY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearScanEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultWatchlist, cfg.Watchlist)
	assert.Equal(t, 10, cfg.Scan.WindowSize)
	assert.Equal(t, 30, cfg.Scan.MinBars)
	assert.Equal(t, "3mo", cfg.Scan.Lookback)
	assert.Equal(t, 4, cfg.Scan.Concurrency)
	assert.Equal(t, 12, cfg.MACD.FastSpan)
	assert.Equal(t, 26, cfg.MACD.SlowSpan)
	assert.Equal(t, 9, cfg.MACD.SignalSpan)
	assert.Empty(t, cfg.Schedule.Cron)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	clearScanEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
watchlist: ["7203.T", "6758.T"]
scan:
  window_size: 15
  lookback: "6mo"
schedule:
  cron: "0 30 8 * * 1-5"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("WATCHLIST", "9984.T, 8035.T")
	t.Setenv("SCAN_LOOKBACK", "1y")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Environment wins over the YAML file.
	assert.Equal(t, []string{"9984.T", "8035.T"}, cfg.Watchlist)
	assert.Equal(t, "1y", cfg.Scan.Lookback)
	// YAML wins over defaults.
	assert.Equal(t, 15, cfg.Scan.WindowSize)
	assert.Equal(t, "0 30 8 * * 1-5", cfg.Schedule.Cron)
	// Untouched fields keep their defaults.
	assert.Equal(t, 30, cfg.Scan.MinBars)
}

func TestValidate_Failures(t *testing.T) {
	clearScanEnv(t)

	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Watchlist = nil
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.WindowSize = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.MinBars = cfg.Scan.WindowSize
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.Lookback = "fortnight"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.Concurrency = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.MACD.FastSpan = 26
	cfg.MACD.SlowSpan = 12
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Telegram.BotToken = "token-without-chat"
	assert.Error(t, cfg.Validate())
}

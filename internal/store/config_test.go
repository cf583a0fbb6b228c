package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	p := writeTempConfig(t, `
symbols:
  - RELIANCE
indicators:
  rsi:
    period: 7
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Indicators.RSI.Period != 7 {
		t.Errorf("rsi period = %d, want 7", cfg.Indicators.RSI.Period)
	}
	// Everything not mentioned keeps its default.
	if !cfg.Indicators.RSI.Enabled || !cfg.Indicators.MACD.Enabled {
		t.Error("defaults should keep the scored indicators enabled")
	}
	if cfg.HistoryDays != 180 || cfg.Interval != "day" {
		t.Errorf("history defaults changed: %d %s", cfg.HistoryDays, cfg.Interval)
	}
	if cfg.Provider != "AUTO" || cfg.Exchange != "NSE" {
		t.Errorf("provider defaults changed: %s %s", cfg.Provider, cfg.Exchange)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigRejectsInvalidYAML(t *testing.T) {
	p := writeTempConfig(t, "symbols: [unclosed")
	if _, err := LoadConfig(p); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symbols = []string{"X"}
	cfg.Provider = "NSE_DIRECT"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidateRequiresSymbols(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty symbols")
	}
}

func TestValidateMACDFastBelowSlow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symbols = []string{"X"}
	cfg.Indicators.MACD.Fast = 26
	cfg.Indicators.MACD.Slow = 12
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for fast >= slow")
	}
}

func TestValidateSMAShortBelowLong(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symbols = []string{"X"}
	cfg.Indicators.SMA.Short = 21
	cfg.Indicators.SMA.Long = 9
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short >= long")
	}
}

func TestValidateDisabledIndicatorSkipsChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symbols = []string{"X"}
	cfg.Indicators.MACD.Enabled = false
	cfg.Indicators.MACD.Fast = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled indicator must not be validated: %v", err)
	}
}

func TestValidateNegativePoll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symbols = []string{"X"}
	cfg.PollSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative poll_seconds")
	}
}

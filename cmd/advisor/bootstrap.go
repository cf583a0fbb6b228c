package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"trade-advisor/internal/advicelog"
	"trade-advisor/internal/advisor"
	"trade-advisor/internal/advisor/advisorobs"
	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/news"
	"trade-advisor/internal/provider"
	"trade-advisor/internal/provider/providerobs"
	"trade-advisor/internal/provider/yahoo"
	"trade-advisor/internal/provider/zerodha"
	"trade-advisor/internal/store"
	"trade-advisor/internal/trace"
)

// initializeSystem loads the environment and brings up logging and tracing.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs gzips old advice logs if a retention window is configured.
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("ADVISOR_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := advicelog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old logs", "error", err)
		}
	}
}

// buildProviderChain assembles the ranked history providers. Zerodha goes
// first when credentials exist; Yahoo needs none and is the fallback. With
// provider AUTO a missing broker setup degrades instead of failing.
func buildProviderChain(ctx context.Context, cfg *store.Config) (*provider.Chain, error) {
	var providers []interfaces.HistoryProvider

	if cfg.Provider == "ZERODHA" || cfg.Provider == "AUTO" {
		z, err := zerodha.New(zerodha.Params{
			APIKey:      os.Getenv("KITE_API_KEY"),
			AccessToken: os.Getenv("KITE_ACCESS_TOKEN"),
			Exchange:    cfg.Exchange,
		})
		if err != nil {
			if cfg.Provider == "ZERODHA" {
				return nil, fmt.Errorf("zerodha provider: %w", err)
			}
			logger.Warn(ctx, "Zerodha not configured, using fallback only", "error", err)
		} else {
			providers = append(providers, providerobs.Wrap(z))
			logger.Info(ctx, "Using Zerodha historical data", "exchange", cfg.Exchange)
		}
	}

	if cfg.Provider == "YAHOO" || cfg.Provider == "AUTO" {
		providers = append(providers, providerobs.Wrap(yahoo.New()))
	}

	if len(providers) == 0 {
		return nil, errors.New("no usable history providers")
	}
	return provider.NewChain(providers...), nil
}

func initializeAdvisor(ctx context.Context, cfg *store.Config) (interfaces.Advisor, error) {
	chain, err := buildProviderChain(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var headlines interfaces.HeadlineFetcher
	if cfg.News.Enabled {
		headlines = news.NewScraper(time.Duration(cfg.News.TimeoutSeconds) * time.Second)
		logger.Info(ctx, "Headline scraping enabled", "max", cfg.News.MaxHeadlines)
	}

	return advisorobs.Wrap(advisor.New(cfg, chain, headlines)), nil
}

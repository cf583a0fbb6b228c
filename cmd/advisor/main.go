package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trade-advisor/internal/advicelog"
	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/report"
	"trade-advisor/internal/store"
	"trade-advisor/internal/trace"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	must(initializeSystem())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer trace.Shutdown(context.Background())

	cfg, err := loadConfig(ctx, *configPath)
	must(err)

	compressOldLogs(ctx)

	adv, err := initializeAdvisor(ctx, cfg)
	must(err)

	if cfg.PollSeconds == 0 {
		analyzeAll(ctx, cfg, adv)
		return
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	tick := time.NewTicker(time.Duration(cfg.PollSeconds) * time.Second)
	defer tick.Stop()

	logger.Info(ctx, "Advisor started", "poll_seconds", cfg.PollSeconds, "symbols", cfg.Symbols)
	analyzeAll(ctx, cfg, adv)
	for {
		select {
		case <-tick.C:
			analyzeAll(ctx, cfg, adv)
		case <-sigc:
			logger.Info(ctx, "Shutting down")
			if p, err := advicelog.SummarizeToday(); err == nil && p != "" {
				logger.Info(ctx, "Advice summary written", "file", p)
			}
			return
		case <-ctx.Done():
			return
		}
	}
}

func analyzeAll(ctx context.Context, cfg *store.Config, adv interfaces.Advisor) {
	for _, sym := range cfg.Symbols {
		res, err := adv.Analyze(ctx, sym)
		if err != nil {
			logger.ErrorWithErr(ctx, "Analysis failed", err, "symbol", sym)
			continue
		}

		report.Render(os.Stdout, res, cfg.Report.TailRows)
		fmt.Println()

		if cfg.AdviceLog.Enabled {
			entry := advicelog.Entry{
				Symbol:   res.Symbol,
				Action:   res.Advice.Action,
				Score:    res.Advice.Score,
				Reason:   res.Advice.Reason,
				Price:    res.Price,
				Provider: res.Provider,
			}
			if err := advicelog.Append(entry); err != nil {
				logger.Warn(ctx, "Failed to append advice log", "symbol", sym, "error", err)
			}
		}
	}
}

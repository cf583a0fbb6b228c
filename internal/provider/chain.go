// Package provider composes history providers into a capability-ranked
// fallback chain: providers are tried in order and the first success wins,
// the same graceful degradation the original app used between its broker API
// and the keyless fallback.
package provider

import (
	"context"
	"errors"
	"fmt"

	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/types"
)

type Chain struct {
	providers []interfaces.HistoryProvider
}

func NewChain(providers ...interfaces.HistoryProvider) *Chain {
	return &Chain{providers: providers}
}

// Fetch tries each provider in order and returns the candles plus the name of
// the provider that served them. A provider returning no candles counts as a
// failure. No provider is retried; an exhausted chain returns the joined
// errors.
func (c *Chain) Fetch(ctx context.Context, symbol string, days int, interval string) ([]types.Candle, string, error) {
	if len(c.providers) == 0 {
		return nil, "", errors.New("no history providers configured")
	}

	var errs []error
	for _, p := range c.providers {
		cs, err := p.Candles(ctx, symbol, days, interval)
		if err != nil {
			logger.Warn(ctx, "Provider failed, falling back", "provider", p.Name(), "symbol", symbol, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		if len(cs) == 0 {
			logger.Warn(ctx, "Provider returned no candles, falling back", "provider", p.Name(), "symbol", symbol)
			errs = append(errs, fmt.Errorf("%s: empty series", p.Name()))
			continue
		}
		return cs, p.Name(), nil
	}
	return nil, "", fmt.Errorf("all providers failed for %s: %w", symbol, errors.Join(errs...))
}

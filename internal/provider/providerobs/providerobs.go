package providerobs

import (
	"context"

	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/trace"
	"trade-advisor/internal/types"
)

// observableProvider wraps a HistoryProvider with logging and tracing.
type observableProvider struct {
	provider interfaces.HistoryProvider
}

var _ interfaces.HistoryProvider = (*observableProvider)(nil)

func Wrap(provider interfaces.HistoryProvider) interfaces.HistoryProvider {
	return &observableProvider{provider: provider}
}

func (op *observableProvider) Name() string { return op.provider.Name() }

func (op *observableProvider) Candles(ctx context.Context, symbol string, days int, interval string) ([]types.Candle, error) {
	ctx, span := trace.StartSpan(ctx, "provider.Candles")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching candles",
		"provider", op.provider.Name(),
		"symbol", symbol,
		"days", days,
		"interval", interval,
	)

	candles, err := op.provider.Candles(ctx, symbol, days, interval)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch candles", err,
			"provider", op.provider.Name(),
			"symbol", symbol,
		)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Candles fetched successfully",
		"provider", op.provider.Name(),
		"symbol", symbol,
		"count", len(candles),
	)
	return candles, nil
}

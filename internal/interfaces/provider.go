package interfaces

import (
	"context"

	"trade-advisor/internal/types"
)

// HistoryProvider supplies a finite, ascending, duplicate-free window of
// historical candles for a symbol. Implementations never retry internally;
// fallback between providers is the chain's concern.
type HistoryProvider interface {
	Name() string
	Candles(ctx context.Context, symbol string, days int, interval string) ([]types.Candle, error)
}

package interfaces

import (
	"context"

	"trade-advisor/internal/types"
)

// HeadlineFetcher provides recent news headlines for a symbol. Headlines are
// report context only; they never feed the scorer.
type HeadlineFetcher interface {
	Headlines(ctx context.Context, symbol string, max int) ([]types.Headline, error)
}

package interfaces

import (
	"context"

	"trade-advisor/internal/types"
)

type Advisor interface {
	Analyze(ctx context.Context, symbol string) (*types.AnalysisResult, error)
}

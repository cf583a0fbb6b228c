package advisorobs

import (
	"context"
	"time"

	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/trace"
	"trade-advisor/internal/types"
)

// observableAdvisor wraps an Advisor with logging and tracing.
type observableAdvisor struct {
	advisor interfaces.Advisor
}

var _ interfaces.Advisor = (*observableAdvisor)(nil)

func Wrap(advisor interfaces.Advisor) interfaces.Advisor {
	return &observableAdvisor{advisor: advisor}
}

func (oa *observableAdvisor) Analyze(ctx context.Context, symbol string) (*types.AnalysisResult, error) {
	ctx, span := trace.StartSpan(ctx, "advisor.Analyze")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting analysis", "symbol", symbol)

	result, err := oa.advisor.Analyze(ctx, symbol)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Analysis failed", err,
			"symbol", symbol,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Analysis completed",
		"symbol", symbol,
		"provider", result.Provider,
		"action", result.Advice.Action,
		"score", result.Advice.Score,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// Package advisor runs one full analysis for a symbol: fetch a historical
// window from the provider chain, compute the configured indicator series,
// score the latest readings and return the suggestion with its reasons.
package advisor

import (
	"context"

	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/provider"
	"trade-advisor/internal/signal"
	"trade-advisor/internal/store"
	"trade-advisor/internal/ta"
	"trade-advisor/internal/types"
)

type Advisor struct {
	cfg   *store.Config
	chain *provider.Chain
	news  interfaces.HeadlineFetcher // nil when headlines are disabled
}

var _ interfaces.Advisor = (*Advisor)(nil)

func New(cfg *store.Config, chain *provider.Chain, news interfaces.HeadlineFetcher) *Advisor {
	return &Advisor{cfg: cfg, chain: chain, news: news}
}

func (a *Advisor) Analyze(ctx context.Context, symbol string) (*types.AnalysisResult, error) {
	candles, providerName, err := a.chain.Fetch(ctx, symbol, a.cfg.HistoryDays, a.cfg.Interval)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "Candles fetched", "symbol", symbol, "provider", providerName, "count", len(candles))

	frame := a.buildFrame(candles)
	features := latestFeatures(frame)
	adv := signal.Evaluate(features)
	logger.Advice(ctx, symbol, adv.Action, adv.Score, adv.Reason)

	latest := candles[len(candles)-1]
	res := &types.AnalysisResult{
		Symbol:   symbol,
		Provider: providerName,
		Price:    latest.Close,
		Time:     latest.Ts,
		Advice:   adv,
		Frame:    frame,
	}

	if a.news != nil && a.cfg.News.Enabled {
		headlines, err := a.news.Headlines(ctx, symbol, a.cfg.News.MaxHeadlines)
		if err != nil {
			logger.Warn(ctx, "Headline fetch failed", "symbol", symbol, "error", err)
		} else {
			res.Headlines = headlines
		}
	}
	return res, nil
}

// buildFrame computes every enabled indicator series over the candles. All
// series come back aligned with the input, so Add never fails here.
func (a *Advisor) buildFrame(candles []types.Candle) *types.Frame {
	n := len(candles)
	ts := make([]int64, n)
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	for i, c := range candles {
		ts[i] = c.Ts
		closes[i] = c.Close
		highs[i] = c.High
		lows[i] = c.Low
	}

	ind := &a.cfg.Indicators
	frame := types.NewFrame(ts)
	_ = frame.Add(signal.FeatClose, closes)
	if ind.RSI.Enabled {
		_ = frame.Add(signal.FeatRSI, ta.RSI(closes, ind.RSI.Period))
	}
	if ind.MACD.Enabled {
		line, signalLine, hist := ta.MACD(closes, ind.MACD.Fast, ind.MACD.Slow, ind.MACD.Signal)
		_ = frame.Add(signal.FeatMACD, line)
		_ = frame.Add(signal.FeatMACDSignal, signalLine)
		_ = frame.Add("hist", hist)
	}
	if ind.SMA.Enabled {
		smaShort, smaLong := ta.MovingAverages(closes, ind.SMA.Short, ind.SMA.Long)
		_ = frame.Add(signal.FeatSMAShort, smaShort)
		_ = frame.Add(signal.FeatSMALong, smaLong)
	}
	if ind.Bollinger.Enabled {
		mid, upper, lower := ta.Bollinger(closes, ind.Bollinger.Window, ind.Bollinger.StdDev)
		_ = frame.Add("bb_ma", mid)
		_ = frame.Add(signal.FeatBBUpper, upper)
		_ = frame.Add(signal.FeatBBLower, lower)
	}
	if ind.ATR.Enabled {
		_ = frame.Add("atr", ta.ATR(highs, lows, closes, ind.ATR.Period))
	}
	return frame
}

// latestFeatures builds the scorer input from the last row where every
// computed column is defined; the previous such row supplies the MACD
// crossover context. Too little history simply yields fewer (or no)
// features, which the scorer treats as families not applicable.
func latestFeatures(frame *types.Frame) signal.Features {
	rows := frame.DefinedRows()
	if len(rows) == 0 {
		return signal.Features{}
	}

	last := rows[len(rows)-1]
	features := signal.Features{}
	for _, name := range frame.Names() {
		features[name] = frame.Value(name, last)
	}

	if len(rows) >= 2 {
		prev := rows[len(rows)-2]
		if _, ok := frame.Column(signal.FeatMACD); ok {
			features[signal.FeatMACDPrev] = frame.Value(signal.FeatMACD, prev)
			features[signal.FeatSignalPrev] = frame.Value(signal.FeatMACDSignal, prev)
		}
	}
	return features
}

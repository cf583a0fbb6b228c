// Package signal turns the latest indicator readings into a BUY/SELL/HOLD
// suggestion with a human-readable justification. Rule families are evaluated
// independently in a fixed order; each contributes a weighted score delta and
// one reason only when every input it needs is present.
package signal

import (
	"fmt"
	"math"
	"strings"

	"trade-advisor/internal/types"
)

const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)

// InsufficientDataReason is the terminal HOLD reason used when no rule family
// had enough inputs to contribute. It is distinct from a computed neutral
// HOLD.
const InsufficientDataReason = "Not enough indicator data to form a signal."

const (
	buyThreshold  = 1.5
	sellThreshold = -1.5
)

// Feature keys, matching the indicator column names in the frame.
const (
	FeatClose      = "close"
	FeatRSI        = "rsi"
	FeatMACD       = "macd"
	FeatMACDSignal = "signal"
	FeatMACDPrev   = "macd_prev"
	FeatSignalPrev = "signal_prev"
	FeatSMAShort   = "sma_short"
	FeatSMALong    = "sma_long"
	FeatBBUpper    = "bb_upper"
	FeatBBLower    = "bb_lower"
)

// Features is the most recent fully-defined indicator row. A missing key
// means that indicator was not computed (or never became defined); the rule
// family needing it is skipped, not failed.
type Features map[string]float64

func (f Features) get(key string) (float64, bool) {
	v, ok := f[key]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

type ruleFamily struct {
	name string
	eval func(f Features) (delta float64, reason string, ok bool)
}

// Evaluation (and reason) order is fixed: RSI, MACD crossover, SMA trend,
// Bollinger.
var families = []ruleFamily{
	{"rsi", evalRSI},
	{"macd_crossover", evalMACDCrossover},
	{"sma_trend", evalSMATrend},
	{"bollinger", evalBollinger},
}

// Evaluate scores the feature row and maps the total to an action:
// score >= 1.5 BUY, score <= -1.5 SELL, otherwise HOLD.
func Evaluate(f Features) types.Advice {
	score := 0.0
	var reasons []string
	for _, fam := range families {
		if delta, reason, ok := fam.eval(f); ok {
			score += delta
			reasons = append(reasons, reason)
		}
	}

	if len(reasons) == 0 {
		return types.Advice{
			Action:  ActionHold,
			Reasons: []string{InsufficientDataReason},
			Reason:  InsufficientDataReason,
		}
	}

	action := ActionHold
	switch {
	case score >= buyThreshold:
		action = ActionBuy
	case score <= sellThreshold:
		action = ActionSell
	}

	return types.Advice{
		Action:  action,
		Score:   score,
		Reasons: reasons,
		Reason:  strings.Join(reasons, "; "),
	}
}

func evalRSI(f Features) (float64, string, bool) {
	rsi, ok := f.get(FeatRSI)
	if !ok {
		return 0, "", false
	}
	if rsi < 30 {
		return 1, fmt.Sprintf("RSI is low (%.1f), indicating oversold.", rsi), true
	}
	if rsi > 70 {
		return -1, fmt.Sprintf("RSI is high (%.1f), indicating overbought.", rsi), true
	}
	return 0, "", false
}

// evalMACDCrossover needs two consecutive defined rows; without the previous
// values the family is skipped entirely.
func evalMACDCrossover(f Features) (float64, string, bool) {
	macd, ok1 := f.get(FeatMACD)
	sig, ok2 := f.get(FeatMACDSignal)
	macdPrev, ok3 := f.get(FeatMACDPrev)
	sigPrev, ok4 := f.get(FeatSignalPrev)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, "", false
	}
	prevDiff := macdPrev - sigPrev
	nowDiff := macd - sig
	if prevDiff < 0 && nowDiff > 0 {
		return 1.5, "MACD line crossed above the signal line (bullish crossover).", true
	}
	if prevDiff > 0 && nowDiff < 0 {
		return -1.5, "MACD line crossed below the signal line (bearish crossover).", true
	}
	return 0, "", false
}

// evalSMATrend always contributes one of its two branches when both averages
// are defined; equal averages count as downtrend.
func evalSMATrend(f Features) (float64, string, bool) {
	short, ok1 := f.get(FeatSMAShort)
	long, ok2 := f.get(FeatSMALong)
	if !ok1 || !ok2 {
		return 0, "", false
	}
	if short > long {
		return 0.5, "Short-term moving average is above the long-term (uptrend).", true
	}
	return -0.5, "Short-term moving average is below the long-term (downtrend).", true
}

func evalBollinger(f Features) (float64, string, bool) {
	close, ok1 := f.get(FeatClose)
	lower, ok2 := f.get(FeatBBLower)
	upper, ok3 := f.get(FeatBBUpper)
	if !ok1 || !ok2 || !ok3 {
		return 0, "", false
	}
	if close < lower {
		return 1, "Price is below the lower Bollinger Band (potential bounce).", true
	}
	if close > upper {
		return -1, "Price is above the upper Bollinger Band (potential pullback).", true
	}
	return 0, "", false
}

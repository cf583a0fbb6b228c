// Package ta implements the indicator series behind the advisor: RSI, MACD,
// simple moving averages, Bollinger Bands and ATR. Every function is a pure
// transform of its input; the output is index-aligned with the input (same
// length) and positions without enough history hold NaN, never zero. An empty
// input yields an empty output, not an error.
package ta

import "math"

// ewm is the non-adjusted (recursive) exponential moving average:
// y[t] = y[t-1] + alpha*(x[t] - y[t-1]). Leading NaNs are preserved and
// smoothing starts at the first real value.
func ewm(vals []float64, alpha float64) []float64 {
	out := make([]float64, len(vals))
	prev := math.NaN()
	for i, v := range vals {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		if math.IsNaN(prev) {
			prev = v
		} else {
			prev += alpha * (v - prev)
		}
		out[i] = prev
	}
	return out
}

// spanAlpha converts an EMA span to a smoothing factor.
func spanAlpha(span int) float64 { return 2.0 / (float64(span) + 1.0) }

// RSI computes the Relative Strength Index over close prices using
// Wilder-style smoothing (exponential average with center-of-mass period-1,
// i.e. alpha = 1/period) of up and down moves. The first position has no
// price change and is NaN; everything after is defined.
//
// Degenerate averages are resolved explicitly: no down moves at all means a
// perfect uptrend (100), and a completely flat window means neither side
// dominates (50) rather than a NaN from 0/0.
func RSI(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 || period <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	up := make([]float64, len(closes))
	down := make([]float64, len(closes))
	up[0], down[0] = math.NaN(), math.NaN()
	for i := 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		up[i] = math.Max(d, 0)
		down[i] = math.Max(-d, 0)
	}
	alpha := 1.0 / float64(period)
	avgUp := ewm(up, alpha)
	avgDown := ewm(down, alpha)
	for i := range out {
		u, d := avgUp[i], avgDown[i]
		switch {
		case math.IsNaN(u) || math.IsNaN(d):
			out[i] = math.NaN()
		case d == 0 && u == 0:
			out[i] = 50
		case d == 0:
			out[i] = 100
		default:
			out[i] = 100 - 100/(1+u/d)
		}
	}
	return out
}

// MACD computes the MACD line (EMA(fast) - EMA(slow)), its signal line
// (EMA of the MACD line) and the histogram (line - signal). All EMAs use
// span-based smoothing in the recursive form, so all three series are defined
// from the first element.
func MACD(closes []float64, fast, slow, signal int) (line, signalLine, hist []float64) {
	emaFast := ewm(closes, spanAlpha(fast))
	emaSlow := ewm(closes, spanAlpha(slow))
	line = make([]float64, len(closes))
	for i := range line {
		line[i] = emaFast[i] - emaSlow[i]
	}
	signalLine = ewm(line, spanAlpha(signal))
	hist = make([]float64, len(closes))
	for i := range hist {
		hist[i] = line[i] - signalLine[i]
	}
	return line, signalLine, hist
}

// MovingAverages returns the short and long simple moving averages. Unlike
// the other indicators, positions before a window fills use the mean of all
// points so far (minimum one), so both series are defined from the first
// element.
func MovingAverages(closes []float64, short, long int) (smaShort, smaLong []float64) {
	return rollingMean(closes, short, 1), rollingMean(closes, long, 1)
}

func rollingMean(vals []float64, window, minPeriods int) []float64 {
	out := make([]float64, len(vals))
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		if n < minPeriods {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out
}

// rollingStd is the sample standard deviation (Bessel's correction) over a
// full window; positions before the window fills are NaN.
func rollingStd(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		if window < 2 || i < window-1 {
			out[i] = math.NaN()
			continue
		}
		w := vals[i-window+1 : i+1]
		m := 0.0
		for _, v := range w {
			m += v
		}
		m /= float64(window)
		s := 0.0
		for _, v := range w {
			d := v - m
			s += d * d
		}
		out[i] = math.Sqrt(s / float64(window-1))
	}
	return out
}

// Bollinger computes the rolling mean plus bands k sample standard deviations
// away. There is no minimum-period relaxation here: everything before the
// window fills is NaN.
func Bollinger(closes []float64, window int, k float64) (mid, upper, lower []float64) {
	mid = rollingMean(closes, window, window)
	sd := rollingStd(closes, window)
	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = mid[i] + k*sd[i]
		lower[i] = mid[i] - k*sd[i]
	}
	return mid, upper, lower
}

// ATR is the simple moving average of the true range over period bars; it is
// the one transform that needs full OHLC input. The first true range needs a
// previous close, so values appear once period ranges exist.
func ATR(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	if len(highs) != n || len(lows) != n || period <= 0 {
		return out
	}
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		tr1 := highs[i] - lows[i]
		tr2 := math.Abs(highs[i] - closes[i-1])
		tr3 := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(tr1, math.Max(tr2, tr3))
	}
	for i := period; i < n; i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += tr[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

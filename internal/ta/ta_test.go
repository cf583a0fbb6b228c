package ta

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestRSIMonotonicIncreasingStaysInRange(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	out := RSI(closes, 14)
	if len(out) != len(closes) {
		t.Fatalf("expected %d values, got %d", len(closes), len(out))
	}
	if !math.IsNaN(out[0]) {
		t.Errorf("expected NaN at position 0, got %f", out[0])
	}
	for i := 1; i < len(out); i++ {
		if math.IsNaN(out[i]) {
			t.Fatalf("unexpected NaN at position %d", i)
		}
		if out[i] < 0 || out[i] > 100 {
			t.Errorf("RSI out of range at %d: %f", i, out[i])
		}
	}
	// No down moves at all: perfect uptrend.
	if !almostEqual(out[len(out)-1], 100) {
		t.Errorf("expected RSI 100 on strictly increasing series, got %f", out[len(out)-1])
	}
}

func TestRSIConstantSeriesIsNeutral(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 250
	}

	out := RSI(closes, 14)
	for i := 1; i < len(out); i++ {
		if math.IsNaN(out[i]) {
			t.Fatalf("NaN leaked at position %d on constant series", i)
		}
		if !almostEqual(out[i], 50) {
			t.Errorf("expected neutral 50 at %d, got %f", i, out[i])
		}
	}
}

func TestRSIMonotonicDecreasingIsZero(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 300 - float64(i)
	}

	out := RSI(closes, 14)
	if !almostEqual(out[len(out)-1], 0) {
		t.Errorf("expected RSI 0 on strictly decreasing series, got %f", out[len(out)-1])
	}
}

func TestRSIMixedSeriesStrictlyBetween(t *testing.T) {
	closes := []float64{10, 11, 10.5, 11.2, 10.8, 11.5, 11.1, 11.9, 11.4, 12, 11.7, 12.3}

	out := RSI(closes, 5)
	last := out[len(out)-1]
	if math.IsNaN(last) || last <= 0 || last >= 100 {
		t.Errorf("expected RSI strictly inside (0,100), got %f", last)
	}
}

func TestRSIEmptyInput(t *testing.T) {
	if out := RSI(nil, 14); len(out) != 0 {
		t.Errorf("expected empty output, got %d values", len(out))
	}
}

func TestMACDHistogramIdentity(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/7) + float64(i)/3
	}

	line, signalLine, hist := MACD(closes, 12, 26, 9)
	if len(line) != len(closes) || len(signalLine) != len(closes) || len(hist) != len(closes) {
		t.Fatal("MACD outputs not aligned with input")
	}
	for i := range closes {
		if !almostEqual(hist[i], line[i]-signalLine[i]) {
			t.Errorf("histogram mismatch at %d: %f vs %f", i, hist[i], line[i]-signalLine[i])
		}
	}
}

func TestMACDConstantSeriesConvergesToZero(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 500
	}

	line, signalLine, hist := MACD(closes, 12, 26, 9)
	for i := range closes {
		if math.IsNaN(line[i]) || math.IsNaN(signalLine[i]) || math.IsNaN(hist[i]) {
			t.Fatalf("NaN at position %d on constant series", i)
		}
	}
	if !almostEqual(hist[len(hist)-1], 0) {
		t.Errorf("expected histogram 0 on constant series, got %g", hist[len(hist)-1])
	}
}

func TestMovingAveragesMinPeriodRelaxation(t *testing.T) {
	closes := []float64{2, 4, 6}

	smaShort, smaLong := MovingAverages(closes, 2, 3)
	wantShort := []float64{2, 3, 5}
	wantLong := []float64{2, 3, 4}
	for i := range closes {
		if !almostEqual(smaShort[i], wantShort[i]) {
			t.Errorf("sma_short[%d] = %f, want %f", i, smaShort[i], wantShort[i])
		}
		if !almostEqual(smaLong[i], wantLong[i]) {
			t.Errorf("sma_long[%d] = %f, want %f", i, smaLong[i], wantLong[i])
		}
	}
}

func TestMovingAveragesNeverNaN(t *testing.T) {
	closes := make([]float64, 50)
	for i := range closes {
		closes[i] = float64(i%7) + 20
	}

	smaShort, smaLong := MovingAverages(closes, 9, 21)
	for i := range closes {
		if math.IsNaN(smaShort[i]) || math.IsNaN(smaLong[i]) {
			t.Fatalf("unexpected NaN at position %d", i)
		}
	}
}

func TestBollingerWarmupAndOrdering(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}
	window := 20

	mid, upper, lower := Bollinger(closes, window, 2)
	for i := 0; i < window-1; i++ {
		if !math.IsNaN(mid[i]) || !math.IsNaN(upper[i]) || !math.IsNaN(lower[i]) {
			t.Errorf("expected NaN during warm-up at %d", i)
		}
	}
	for i := window - 1; i < len(closes); i++ {
		if math.IsNaN(mid[i]) {
			t.Fatalf("unexpected NaN at %d", i)
		}
		if !(lower[i] <= mid[i] && mid[i] <= upper[i]) {
			t.Errorf("band ordering violated at %d: %f %f %f", i, lower[i], mid[i], upper[i])
		}
	}
}

func TestBollingerUsesSampleStd(t *testing.T) {
	closes := []float64{1, 2, 3}

	mid, upper, lower := Bollinger(closes, 3, 2)
	// mean 2, sample std 1 (Bessel), k=2
	if !almostEqual(mid[2], 2) {
		t.Errorf("mid = %f, want 2", mid[2])
	}
	if !almostEqual(upper[2], 4) {
		t.Errorf("upper = %f, want 4", upper[2])
	}
	if !almostEqual(lower[2], 0) {
		t.Errorf("lower = %f, want 0", lower[2])
	}
}

func TestATRWarmupAndConstantSeries(t *testing.T) {
	n := 30
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := range closes {
		highs[i], lows[i], closes[i] = 100, 100, 100
	}
	period := 14

	out := ATR(highs, lows, closes, period)
	if len(out) != n {
		t.Fatalf("expected %d values, got %d", n, len(out))
	}
	for i := 0; i < period; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("expected NaN during warm-up at %d, got %f", i, out[i])
		}
	}
	for i := period; i < n; i++ {
		if !almostEqual(out[i], 0) {
			t.Errorf("expected ATR 0 on flat series at %d, got %f", i, out[i])
		}
	}
}

func TestATRMismatchedInputsAllNaN(t *testing.T) {
	out := ATR([]float64{1, 2}, []float64{1}, []float64{1, 2}, 1)
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Errorf("expected NaN at %d for mismatched inputs, got %f", i, v)
		}
	}
}

func TestEmptyInputsYieldEmptyOutputs(t *testing.T) {
	if out := RSI(nil, 14); len(out) != 0 {
		t.Error("RSI on empty input should be empty")
	}
	line, signalLine, hist := MACD(nil, 12, 26, 9)
	if len(line) != 0 || len(signalLine) != 0 || len(hist) != 0 {
		t.Error("MACD on empty input should be empty")
	}
	s, l := MovingAverages(nil, 9, 21)
	if len(s) != 0 || len(l) != 0 {
		t.Error("MovingAverages on empty input should be empty")
	}
	mid, up, lo := Bollinger(nil, 20, 2)
	if len(mid) != 0 || len(up) != 0 || len(lo) != 0 {
		t.Error("Bollinger on empty input should be empty")
	}
	if out := ATR(nil, nil, nil, 14); len(out) != 0 {
		t.Error("ATR on empty input should be empty")
	}
}

package report

import (
	"math"
	"strings"
	"testing"

	"trade-advisor/internal/types"
)

func sampleResult(t *testing.T) *types.AnalysisResult {
	t.Helper()
	frame := types.NewFrame([]int64{129600, 216000, 302400})
	if err := frame.Add("close", []float64{100, 101, 102}); err != nil {
		t.Fatal(err)
	}
	if err := frame.Add("rsi", []float64{math.NaN(), 55, 60}); err != nil {
		t.Fatal(err)
	}
	return &types.AnalysisResult{
		Symbol:   "RELIANCE",
		Provider: "yahoo",
		Price:    102,
		Time:     302400,
		Advice: types.Advice{
			Action:  "HOLD",
			Score:   0.5,
			Reasons: []string{"Short-term moving average is above the long-term (uptrend)."},
		},
		Frame: frame,
	}
}

func TestRenderIncludesSuggestionAndReasons(t *testing.T) {
	var b strings.Builder
	Render(&b, sampleResult(t), 5)
	out := b.String()

	for _, want := range []string{
		"RELIANCE",
		"source: yahoo",
		"Suggestion: HOLD (score 0.5)",
		"Short-term moving average is above the long-term (uptrend).",
		"Recent indicator values:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUndefinedValuesAsDash(t *testing.T) {
	var b strings.Builder
	Render(&b, sampleResult(t), 5)

	// The first row's RSI is NaN and must render as "-".
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(line, "1970-01-02") {
			if !strings.HasSuffix(strings.TrimRight(line, " "), "-") {
				t.Errorf("expected dash for undefined value in %q", line)
			}
			return
		}
	}
	t.Errorf("first tail row missing:\n%s", b.String())
}

func TestRenderTailLimitsRows(t *testing.T) {
	var b strings.Builder
	Render(&b, sampleResult(t), 1)
	out := b.String()

	if strings.Contains(out, "1970-01-02") || strings.Contains(out, "1970-01-03") {
		t.Errorf("tail should keep only the last row:\n%s", out)
	}
	if !strings.Contains(out, "1970-01-04") {
		t.Errorf("last row missing from tail:\n%s", out)
	}
}

func TestRenderSkipsTableWhenDisabled(t *testing.T) {
	var b strings.Builder
	Render(&b, sampleResult(t), 0)
	if strings.Contains(b.String(), "Recent indicator values:") {
		t.Error("tail_rows 0 should skip the table")
	}
}

func TestRenderHeadlines(t *testing.T) {
	res := sampleResult(t)
	res.Headlines = []types.Headline{{Source: "moneycontrol", Title: "Board approves buyback"}}

	var b strings.Builder
	Render(&b, res, 0)
	if !strings.Contains(b.String(), "[moneycontrol] Board approves buyback") {
		t.Errorf("headline missing:\n%s", b.String())
	}
}

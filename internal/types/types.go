package types

type Candle struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// Advice is the scorer's output: a discrete action plus the ordered reasons
// that produced it. Reason is the reasons joined for display.
type Advice struct {
	Action  string   `json:"action"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
	Reason  string   `json:"reason"`
}

// AnalysisResult is one full run for a symbol: where the data came from, the
// latest close, the advice and the computed indicator frame.
type AnalysisResult struct {
	Symbol    string     `json:"symbol"`
	Provider  string     `json:"provider"`
	Price     float64    `json:"price"`
	Time      int64      `json:"time"`
	Advice    Advice     `json:"advice"`
	Frame     *Frame     `json:"-"`
	Headlines []Headline `json:"headlines,omitempty"`
}

type Headline struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

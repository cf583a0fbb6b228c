// Package yahoo fetches historical candles from the Yahoo Finance chart API.
// It needs no credentials, which makes it the fallback when no broker keys
// are configured.
package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"trade-advisor/internal/api"
	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/types"
)

const baseURL = "https://query1.finance.yahoo.com"

type Provider struct {
	client *api.Client
}

var _ interfaces.HistoryProvider = (*Provider)(nil)

func New() *Provider {
	return &Provider{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(15*time.Second),
			api.WithHeader("User-Agent", "Mozilla/5.0 (compatible; trade-advisor/1.0)"),
			api.WithLogging(true),
		),
	}
}

func (y *Provider) Name() string { return "yahoo" }

// chartResponse is the subset of the v8 chart payload the provider reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (y *Provider) Candles(ctx context.Context, symbol string, days int, interval string) ([]types.Candle, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -days)

	params := url.Values{}
	params.Set("period1", strconv.FormatInt(from.Unix(), 10))
	params.Set("period2", strconv.FormatInt(to.Unix(), 10))
	params.Set("interval", mapInterval(interval))

	var resp chartResponse
	if err := y.client.GetJSON(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, err
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart error for %s: %s (%s)",
			symbol, resp.Chart.Error.Description, resp.Chart.Error.Code)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	return parseQuote(result.Timestamp, quote.Open, quote.High, quote.Low, quote.Close, quote.Volume), nil
}

// parseQuote zips the parallel chart arrays into candles. Yahoo pads halted
// or partial sessions with nulls, which decode as zero; those rows are
// dropped so the series stays usable.
func parseQuote(ts []int64, open, high, low, closes, vol []float64) []types.Candle {
	cs := make([]types.Candle, 0, len(ts))
	for i, t := range ts {
		if i >= len(closes) || closes[i] == 0 {
			continue
		}
		c := types.Candle{Ts: t, Close: closes[i]}
		if i < len(open) {
			c.Open = open[i]
		}
		if i < len(high) {
			c.High = high[i]
		}
		if i < len(low) {
			c.Low = low[i]
		}
		if i < len(vol) {
			c.Vol = vol[i]
		}
		cs = append(cs, c)
	}
	return cs
}

// mapInterval converts the config's Kite-style interval names to Yahoo's.
func mapInterval(interval string) string {
	switch interval {
	case "day", "":
		return "1d"
	case "week":
		return "1wk"
	case "60minute":
		return "60m"
	case "30minute":
		return "30m"
	case "15minute":
		return "15m"
	case "5minute":
		return "5m"
	case "minute":
		return "1m"
	}
	return interval
}

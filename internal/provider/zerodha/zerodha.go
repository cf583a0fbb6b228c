// Package zerodha fetches historical candles from the Kite Connect REST API.
package zerodha

import (
	"context"
	"errors"
	"fmt"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/types"
)

type Params struct {
	APIKey      string
	AccessToken string
	Exchange    string
}

type Provider struct {
	p      Params
	kc     *kiteconnect.Client
	mapper *instrumentMapper
}

var _ interfaces.HistoryProvider = (*Provider)(nil)

func New(p Params) (*Provider, error) {
	if p.APIKey == "" || p.AccessToken == "" {
		return nil, errors.New("missing KITE_API_KEY/KITE_ACCESS_TOKEN")
	}
	if p.Exchange == "" {
		p.Exchange = "NSE"
	}
	kc := kiteconnect.New(p.APIKey)
	kc.SetAccessToken(p.AccessToken)
	return &Provider{p: p, kc: kc, mapper: newInstrumentMapper()}, nil
}

func (z *Provider) Name() string { return "zerodha" }

// Candles fetches up to days of history ending now. Kite returns candles in
// ascending time order already.
func (z *Provider) Candles(ctx context.Context, symbol string, days int, interval string) ([]types.Candle, error) {
	token, err := z.lookupToken(symbol)
	if err != nil {
		return nil, err
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	data, err := z.kc.GetHistoricalData(token, interval, from, to, false, false)
	if err != nil {
		return nil, fmt.Errorf("historical data for %s: %w", symbol, err)
	}

	cs := make([]types.Candle, 0, len(data))
	for _, d := range data {
		cs = append(cs, types.Candle{
			Ts:    d.Date.Unix(),
			Open:  d.Open,
			High:  d.High,
			Low:   d.Low,
			Close: d.Close,
			Vol:   float64(d.Volume),
		})
	}
	return cs, nil
}

// lookupToken resolves a trading symbol to its instrument token, loading the
// exchange's instrument dump once and caching the mapping.
func (z *Provider) lookupToken(symbol string) (int, error) {
	if token, ok := z.mapper.getToken(symbol); ok {
		return token, nil
	}
	if !z.mapper.loaded() {
		instruments, err := z.kc.GetInstrumentsByExchange(z.p.Exchange)
		if err != nil {
			return 0, fmt.Errorf("instruments for %s: %w", z.p.Exchange, err)
		}
		mappings := make(map[string]int, len(instruments))
		for _, in := range instruments {
			mappings[in.Tradingsymbol] = in.InstrumentToken
		}
		z.mapper.load(mappings)
	}
	if token, ok := z.mapper.getToken(symbol); ok {
		return token, nil
	}
	return 0, fmt.Errorf("no instrument token for %s on %s", symbol, z.p.Exchange)
}

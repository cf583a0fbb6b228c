package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider    string   `yaml:"provider"` // AUTO, ZERODHA or YAHOO
	Exchange    string   `yaml:"exchange"`
	Symbols     []string `yaml:"symbols"`
	HistoryDays int      `yaml:"history_days"`
	Interval    string   `yaml:"interval"`
	PollSeconds int      `yaml:"poll_seconds"` // 0 = analyze once and exit

	Indicators struct {
		RSI struct {
			Enabled bool `yaml:"enabled"`
			Period  int  `yaml:"period"`
		} `yaml:"rsi"`
		MACD struct {
			Enabled bool `yaml:"enabled"`
			Fast    int  `yaml:"fast"`
			Slow    int  `yaml:"slow"`
			Signal  int  `yaml:"signal"`
		} `yaml:"macd"`
		SMA struct {
			Enabled bool `yaml:"enabled"`
			Short   int  `yaml:"short"`
			Long    int  `yaml:"long"`
		} `yaml:"sma"`
		Bollinger struct {
			Enabled bool    `yaml:"enabled"`
			Window  int     `yaml:"window"`
			StdDev  float64 `yaml:"stddev"`
		} `yaml:"bollinger"`
		ATR struct {
			Enabled bool `yaml:"enabled"`
			Period  int  `yaml:"period"`
		} `yaml:"atr"`
	} `yaml:"indicators"`

	News struct {
		Enabled        bool `yaml:"enabled"`
		MaxHeadlines   int  `yaml:"max_headlines"`
		TimeoutSeconds int  `yaml:"timeout_seconds"`
	} `yaml:"news"`

	Report struct {
		TailRows int `yaml:"tail_rows"`
	} `yaml:"report"`

	AdviceLog struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"advice_log"`
}

// DefaultConfig mirrors the defaults of the original recommendation app:
// all four scored indicators on, standard periods, 180 days of daily candles.
func DefaultConfig() Config {
	var c Config
	c.Provider = "AUTO"
	c.Exchange = "NSE"
	c.HistoryDays = 180
	c.Interval = "day"
	c.Indicators.RSI.Enabled = true
	c.Indicators.RSI.Period = 14
	c.Indicators.MACD.Enabled = true
	c.Indicators.MACD.Fast = 12
	c.Indicators.MACD.Slow = 26
	c.Indicators.MACD.Signal = 9
	c.Indicators.SMA.Enabled = true
	c.Indicators.SMA.Short = 9
	c.Indicators.SMA.Long = 21
	c.Indicators.Bollinger.Enabled = true
	c.Indicators.Bollinger.Window = 20
	c.Indicators.Bollinger.StdDev = 2
	c.Indicators.ATR.Period = 14
	c.News.MaxHeadlines = 5
	c.News.TimeoutSeconds = 10
	c.Report.TailRows = 5
	c.AdviceLog.Enabled = true
	return c
}

func (c *Config) Validate() error {
	switch c.Provider {
	case "AUTO", "ZERODHA", "YAHOO":
	default:
		return fmt.Errorf("invalid provider '%s': must be 'AUTO', 'ZERODHA' or 'YAHOO'", c.Provider)
	}
	if len(c.Symbols) == 0 {
		return errors.New("symbols cannot be empty")
	}
	if c.HistoryDays <= 0 {
		return fmt.Errorf("history_days must be positive, got %d", c.HistoryDays)
	}
	if c.PollSeconds < 0 {
		return fmt.Errorf("poll_seconds cannot be negative, got %d", c.PollSeconds)
	}
	ind := &c.Indicators
	if ind.RSI.Enabled && ind.RSI.Period <= 0 {
		return fmt.Errorf("indicators.rsi.period must be positive, got %d", ind.RSI.Period)
	}
	if ind.MACD.Enabled && (ind.MACD.Fast <= 0 || ind.MACD.Slow <= 0 || ind.MACD.Signal <= 0) {
		return errors.New("indicators.macd periods must all be positive")
	}
	if ind.MACD.Enabled && ind.MACD.Fast >= ind.MACD.Slow {
		return fmt.Errorf("indicators.macd.fast (%d) must be below slow (%d)", ind.MACD.Fast, ind.MACD.Slow)
	}
	if ind.SMA.Enabled && (ind.SMA.Short <= 0 || ind.SMA.Long <= 0) {
		return errors.New("indicators.sma windows must be positive")
	}
	if ind.SMA.Enabled && ind.SMA.Short >= ind.SMA.Long {
		return fmt.Errorf("indicators.sma.short (%d) must be below long (%d)", ind.SMA.Short, ind.SMA.Long)
	}
	if ind.Bollinger.Enabled && ind.Bollinger.Window < 2 {
		return fmt.Errorf("indicators.bollinger.window must be at least 2, got %d", ind.Bollinger.Window)
	}
	if ind.ATR.Enabled && ind.ATR.Period <= 0 {
		return fmt.Errorf("indicators.atr.period must be positive, got %d", ind.ATR.Period)
	}
	return nil
}

// LoadConfig reads a yaml config file over the defaults, so absent keys keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

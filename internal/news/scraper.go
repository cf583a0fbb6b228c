// Package news scrapes recent financial-news headlines for a symbol. The
// headlines only add context to the report; they never influence the score.
package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"trade-advisor/internal/interfaces"
	"trade-advisor/internal/logger"
	"trade-advisor/internal/types"
)

type Scraper struct {
	sources []Source
	timeout time.Duration
}

var _ interfaces.HeadlineFetcher = (*Scraper)(nil)

// Source describes one news site: where to search and which selectors locate
// a headline inside a result item.
type Source struct {
	Name          string
	BaseURL       string
	SearchPath    string // contains {symbol}
	ItemSelector  string
	TitleSelector string
}

func defaultSources() []Source {
	return []Source{
		{
			Name:          "MoneyControl",
			BaseURL:       "https://www.moneycontrol.com",
			SearchPath:    "/news/tags/{symbol}.html",
			ItemSelector:  "li.clearfix",
			TitleSelector: "h2 a, h3 a",
		},
		{
			Name:          "EconomicTimes",
			BaseURL:       "https://economictimes.indiatimes.com",
			SearchPath:    "/topic/{symbol}",
			ItemSelector:  "div.story-box",
			TitleSelector: "a",
		},
	}
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{sources: defaultSources(), timeout: timeout}
}

// Headlines collects up to max headlines across the configured sources.
// A failing source is logged and skipped; an empty result is not an error.
func (s *Scraper) Headlines(ctx context.Context, symbol string, max int) ([]types.Headline, error) {
	perSource := max / len(s.sources)
	if perSource < 1 {
		perSource = 1
	}

	var all []types.Headline
	for _, src := range s.sources {
		if len(all) >= max {
			break
		}
		hs, err := s.scrapeSource(ctx, src, symbol, perSource)
		if err != nil {
			logger.Warn(ctx, "Headline source failed", "source", src.Name, "symbol", symbol, "error", err)
			continue
		}
		all = append(all, hs...)
	}
	if len(all) > max {
		all = all[:max]
	}
	logger.Debug(ctx, "Headlines collected", "symbol", symbol, "count", len(all))
	return all, nil
}

func (s *Scraper) scrapeSource(ctx context.Context, src Source, symbol string, max int) ([]types.Headline, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(hostOf(src.BaseURL)),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	var headlines []types.Headline
	c.OnHTML(src.ItemSelector, func(e *colly.HTMLElement) {
		if len(headlines) >= max {
			return
		}
		if h, ok := extractHeadline(e.DOM, src); ok {
			headlines = append(headlines, h)
		}
	})

	searchURL := src.BaseURL + strings.ReplaceAll(src.SearchPath, "{symbol}", strings.ToLower(symbol))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", searchURL, err)
	}
	c.Wait()

	return headlines, nil
}

// extractHeadline pulls the title link out of a result item.
func extractHeadline(item *goquery.Selection, src Source) (types.Headline, bool) {
	link := item.Find(src.TitleSelector).First()
	title := strings.TrimSpace(link.Text())
	if title == "" {
		return types.Headline{}, false
	}
	href, _ := link.Attr("href")
	if href != "" && !strings.HasPrefix(href, "http") {
		href = src.BaseURL + href
	}
	return types.Headline{Source: src.Name, Title: title, URL: href}, true
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

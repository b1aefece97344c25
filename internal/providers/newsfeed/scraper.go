// Package newsfeed scrapes NBA headlines from news sites.
package newsfeed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

const (
	providerName       = "newsfeed"
	defaultHTTPTimeout = 15 * time.Second
	userAgent          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// timeLayouts are tried in order when reading a publish time.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
}

// Config controls which pages are scraped and how.
type Config struct {
	Sources    []Source
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Scraper fetches every source page and merges their headlines.
type Scraper struct {
	client  *resty.Client
	sources []Source
	logger  *slog.Logger
}

// New builds a scraper; empty Sources means DefaultSources.
func New(cfg Config) *Scraper {
	client := resty.New()
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")

	sources := cfg.Sources
	if len(sources) == 0 {
		sources = DefaultSources
	}
	return &Scraper{client: client, sources: sources, logger: cfg.Logger}
}

// FetchNews returns headlines from every reachable source, newest first and deduplicated by link.
// A failing source is skipped; the call fails only when every source does.
func (s *Scraper) FetchNews(ctx context.Context) ([]news.ArticleInfo, error) {
	var (
		all  []news.ArticleInfo
		errs []error
	)
	for _, src := range s.sources {
		articles, err := s.scrape(ctx, src)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(s.logger, "news source failed", logging.FieldProvider, providerName, "source", src.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		all = append(all, articles...)
	}
	if len(errs) == len(s.sources) {
		return nil, fmt.Errorf("%s: every source failed: %w", providerName, errors.Join(errs...))
	}
	return merge(all), nil
}

func (s *Scraper) scrape(ctx context.Context, src Source) ([]news.ArticleInfo, error) {
	resp, err := s.client.R().SetContext(ctx).Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{Provider: providerName, StatusCode: resp.StatusCode(), Message: src.Name + " rate limited"}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &providers.StatusError{Provider: src.Name, StatusCode: resp.StatusCode()}
	}
	base, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: bad url: %w", src.Name, err)
	}
	return parse(src, base, resp.Body())
}

// parse extracts articles from a page; items without a title, link or readable time are dropped.
func parse(src Source, base *url.URL, body []byte) ([]news.ArticleInfo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", src.Name, err)
	}

	var out []news.ArticleInfo
	doc.Find(src.Item).Each(func(_ int, item *goquery.Selection) {
		title := strings.Join(strings.Fields(item.Find(src.Title).First().Text()), " ")
		href, ok := item.Find(src.Link).First().Attr("href")
		if !ok {
			href, ok = item.Attr("href")
		}
		if title == "" || !ok {
			return
		}
		link, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		published, ok := publishTime(item.Find(src.Time).First(), src.TimeAttr)
		if !ok {
			return
		}
		out = append(out, news.ArticleInfo{
			Title:       title,
			Source:      src.Name,
			Href:        link.String(),
			PublishTime: published.UTC().Format(news.PublishTimeLayout),
		})
	})
	return out, nil
}

func publishTime(sel *goquery.Selection, attr string) (time.Time, bool) {
	if sel.Length() == 0 {
		return time.Time{}, false
	}
	candidates := []string{}
	if attr != "" {
		if v, ok := sel.Attr(attr); ok {
			candidates = append(candidates, v)
		}
	}
	if v, ok := sel.Attr("data-date"); ok {
		candidates = append(candidates, v)
	}
	candidates = append(candidates, sel.Text())

	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// merge dedupes by href, keeping the first occurrence, and sorts newest first.
func merge(articles []news.ArticleInfo) []news.ArticleInfo {
	seen := make(map[string]bool, len(articles))
	out := make([]news.ArticleInfo, 0, len(articles))
	for _, a := range articles {
		if seen[a.Href] {
			continue
		}
		seen[a.Href] = true
		out = append(out, a)
	}
	// PublishTimeLayout is fixed-width UTC, so string order is time order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishTime > out[j].PublishTime })
	return out
}

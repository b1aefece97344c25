package newsfeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
	"github.com/preston-bernstein/nba-stats-proxy/internal/testutil"
)

const pageA = `<html><body>
<article>
  <h2>  Celtics   clinch the East </h2>
  <a href="/news/celtics-clinch">read</a>
  <time datetime="2024-03-01T02:15:00Z">March 1</time>
</article>
<article>
  <h2>No time on this one</h2>
  <a href="/news/no-time">read</a>
</article>
<article>
  <h2>Offset time</h2>
  <a href="https://other.example.com/offset">read</a>
  <time datetime="2024-03-01T09:00:00-05:00"></time>
</article>
</body></html>`

const pageB = `<html><body>
<div class="story"><h3>Duplicate link</h3><a href="https://other.example.com/offset"></a><time>2024-02-28T10:00:00Z</time></div>
<div class="story"><h3>Trade deadline recap</h3><a href="/b/trades"></a><time>Thu, 29 Feb 2024 16:00:00 +0000</time></div>
</body></html>`

func source(name, base, path, item string) Source {
	return Source{Name: name, URL: base + path, Item: item, Title: "h2, h3", Link: "a[href]", Time: "time", TimeAttr: "datetime"}
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			if r.Header.Get("User-Agent") == "" {
				t.Errorf("expected user agent header")
			}
			_, _ = w.Write([]byte(pageA))
		case "/b":
			_, _ = w.Write([]byte(pageB))
		case "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchNewsMergesSourcesNewestFirst(t *testing.T) {
	srv := newServer(t)
	s := New(Config{Sources: []Source{
		source("A", srv.URL, "/a", "article"),
		source("B", srv.URL, "/b", "div.story"),
	}})

	got, err := s.FetchNews(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 articles after dedupe and dropping undated, got %+v", got)
	}

	if got[0].Title != "Offset time" || got[0].PublishTime != "2024-03-01T14:00:00Z" {
		t.Fatalf("expected offset time converted to UTC first, got %+v", got[0])
	}
	if got[1].Title != "Celtics clinch the East" || got[1].Href != srv.URL+"/news/celtics-clinch" || got[1].Source != "A" {
		t.Fatalf("unexpected second article %+v", got[1])
	}
	if got[2].Title != "Trade deadline recap" || got[2].PublishTime != "2024-02-29T16:00:00Z" {
		t.Fatalf("unexpected third article %+v", got[2])
	}
}

func TestFetchNewsSkipsFailingSource(t *testing.T) {
	srv := newServer(t)
	logger, buf := testutil.NewBufferLogger()
	s := New(Config{Logger: logger, Sources: []Source{
		source("Missing", srv.URL, "/missing", "article"),
		source("B", srv.URL, "/b", "div.story"),
	}})

	got, err := s.FetchNews(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected articles from the healthy source, got %+v", got)
	}
	if !strings.Contains(buf.String(), "news source failed") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
}

func TestFetchNewsFailsWhenEverySourceFails(t *testing.T) {
	srv := newServer(t)
	s := New(Config{Sources: []Source{
		source("Missing", srv.URL, "/missing", "article"),
		source("Limited", srv.URL, "/limited", "article"),
	}})

	_, err := s.FetchNews(context.Background())
	if err == nil {
		t.Fatal("expected error when all sources fail")
	}
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected joined status error, got %v", err)
	}
	if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected joined rate limit error, got %v", err)
	}
}

func TestFetchNewsHonorsCanceledContext(t *testing.T) {
	srv := newServer(t)
	s := New(Config{Sources: []Source{source("A", srv.URL, "/a", "article")}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.FetchNews(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestParseDropsItemsWithoutTitleOrLink(t *testing.T) {
	base, _ := url.Parse("https://example.com/news/")
	html := `<article><a href="x"></a><time datetime="2024-01-01T00:00:00Z"></time></article>
<article><h2>No link</h2><time datetime="2024-01-01T00:00:00Z"></time></article>
<article><h2>Relative</h2><a href="story"></a><time datetime="2024-01-01T00:00:00Z"></time></article>`
	got, err := parse(Source{Name: "T", Item: "article", Title: "h2", Link: "a[href]", Time: "time", TimeAttr: "datetime"}, base, []byte(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Href != "https://example.com/news/story" {
		t.Fatalf("unexpected parse result %+v", got)
	}
}

func TestNewDefaultsSources(t *testing.T) {
	s := New(Config{})
	if len(s.sources) != len(DefaultSources) {
		t.Fatalf("expected default sources, got %d", len(s.sources))
	}
}

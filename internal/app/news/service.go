package news

import (
	"context"

	"github.com/preston-bernstein/nba-stats-proxy/internal/cache"
	domainnews "github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

const cacheKey = "news"

// Service serves merged headlines through a short-lived cache.
type Service struct {
	provider providers.NewsProvider
	cache    *cache.TTL[[]domainnews.ArticleInfo]
}

// NewService constructs a Service; a nil cache gets a private in-memory one.
func NewService(provider providers.NewsProvider, c *cache.TTL[[]domainnews.ArticleInfo]) *Service {
	if c == nil {
		c = cache.New[[]domainnews.ArticleInfo]("news", 0, nil)
	}
	return &Service{provider: provider, cache: c}
}

// News returns the latest headlines, newest first.
func (s *Service) News(ctx context.Context) ([]domainnews.ArticleInfo, error) {
	articles, err := s.cache.GetOrLoad(ctx, cacheKey, s.provider.FetchNews)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []domainnews.ArticleInfo{}
	}
	return articles, nil
}

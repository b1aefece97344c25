package boxscores

import (
	"context"

	"github.com/preston-bernstein/nba-stats-proxy/internal/cache"
	domainbox "github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

// Service serves box scores through a short-lived cache.
type Service struct {
	provider providers.BoxScoreProvider
	cache    *cache.TTL[domainbox.BoxScore]
}

// NewService constructs a Service; a nil cache gets a private in-memory one.
func NewService(provider providers.BoxScoreProvider, c *cache.TTL[domainbox.BoxScore]) *Service {
	if c == nil {
		c = cache.New[domainbox.BoxScore]("boxscores", 0, nil)
	}
	return &Service{provider: provider, cache: c}
}

// BoxScore returns the box score for a 10-digit game id.
func (s *Service) BoxScore(ctx context.Context, gameID string) (domainbox.BoxScore, error) {
	if err := domainbox.ValidateGameID(gameID); err != nil {
		return domainbox.BoxScore{}, err
	}
	return s.cache.GetOrLoad(ctx, gameID, func(ctx context.Context) (domainbox.BoxScore, error) {
		return s.provider.FetchBoxScore(ctx, gameID)
	})
}

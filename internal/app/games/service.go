package games

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/cache"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

// Service serves daily schedules through a short-lived cache.
type Service struct {
	provider providers.GameProvider
	cache    *cache.TTL[[]domaingames.Game]
}

// NewService constructs a Service; a nil cache gets a private in-memory one.
func NewService(provider providers.GameProvider, c *cache.TTL[[]domaingames.Game]) *Service {
	if c == nil {
		c = cache.New[[]domaingames.Game]("games", 0, nil)
	}
	return &Service{provider: provider, cache: c}
}

// GamesOn returns every game scheduled on day. A day without games is an empty list, not an error.
func (s *Service) GamesOn(ctx context.Context, day time.Time) ([]domaingames.Game, error) {
	key := day.Format(domaingames.DayKey)
	games, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]domaingames.Game, error) {
		return s.provider.FetchGames(ctx, day)
	})
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []domaingames.Game{}
	}
	return games, nil
}

package standings

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-stats-proxy/internal/cache"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

// Service serves league standings through a short-lived cache.
type Service struct {
	provider providers.StandingsProvider
	cache    *cache.TTL[domainstandings.Standings]
}

// NewService constructs a Service; a nil cache gets a private in-memory one.
func NewService(provider providers.StandingsProvider, c *cache.TTL[domainstandings.Standings]) *Service {
	if c == nil {
		c = cache.New[domainstandings.Standings]("standings", 0, nil)
	}
	return &Service{provider: provider, cache: c}
}

// Standings returns the table for a season id such as "2023-24", split by conference.
// A season the upstream has no rows for is not found.
func (s *Service) Standings(ctx context.Context, season string) (domainstandings.Standings, error) {
	if err := domainstandings.ValidateSeason(season); err != nil {
		return domainstandings.Standings{}, err
	}
	return s.cache.GetOrLoad(ctx, season, func(ctx context.Context) (domainstandings.Standings, error) {
		rows, err := s.provider.FetchStandings(ctx, season)
		if err != nil {
			return domainstandings.Standings{}, err
		}
		out := domainstandings.Split(season, rows)
		if out.Empty() {
			return domainstandings.Standings{}, fmt.Errorf("season %s: %w", season, domain.ErrNotFound)
		}
		return out, nil
	})
}

package players

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-stats-proxy/internal/cache"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	domainplayers "github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

const indexKey = "all"

// Service answers player search, player stats and comparisons.
// The player index and per-player stats are cached separately.
type Service struct {
	provider providers.PlayerProvider
	index    *cache.TTL[[]domainplayers.Player]
	stats    *cache.TTL[domainplayers.PlayerStatsOut]
}

// NewService constructs a Service; nil caches get private in-memory ones that never hit.
func NewService(provider providers.PlayerProvider, index *cache.TTL[[]domainplayers.Player], stats *cache.TTL[domainplayers.PlayerStatsOut]) *Service {
	if index == nil {
		index = cache.New[[]domainplayers.Player]("player_index", 0, nil)
	}
	if stats == nil {
		stats = cache.New[domainplayers.PlayerStatsOut]("players", 0, nil)
	}
	return &Service{provider: provider, index: index, stats: stats}
}

func (s *Service) playerIndex(ctx context.Context) ([]domainplayers.Player, error) {
	return s.index.GetOrLoad(ctx, indexKey, s.provider.FetchPlayerIndex)
}

// Search returns index entries whose full name contains every term of name.
// Active players come first; order within each group follows the index.
func (s *Service) Search(ctx context.Context, name string) ([]domainplayers.SearchResult, error) {
	terms := domainplayers.SearchTerms(name)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty player name: %w", domain.ErrInvalidInput)
	}
	index, err := s.playerIndex(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domainplayers.Player, 0)
	for _, p := range index {
		if p.Matches(terms) {
			matches = append(matches, p)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Active && !matches[j].Active
	})

	out := make([]domainplayers.SearchResult, len(matches))
	for i, p := range matches {
		out[i] = domainplayers.NewSearchResult(p)
	}
	return out, nil
}

// PlayerStats returns per-season and career averages for playerID.
func (s *Service) PlayerStats(ctx context.Context, playerID int) (domainplayers.PlayerStatsOut, error) {
	if playerID <= 0 {
		return domainplayers.PlayerStatsOut{}, fmt.Errorf("player id %d: %w", playerID, domain.ErrInvalidInput)
	}
	return s.stats.GetOrLoad(ctx, fmt.Sprint(playerID), func(ctx context.Context) (domainplayers.PlayerStatsOut, error) {
		player, err := s.lookup(ctx, playerID)
		if err != nil {
			return domainplayers.PlayerStatsOut{}, err
		}
		career, err := s.provider.FetchCareerStats(ctx, playerID)
		if err != nil {
			return domainplayers.PlayerStatsOut{}, err
		}
		return buildStats(player, career), nil
	})
}

func (s *Service) lookup(ctx context.Context, playerID int) (domainplayers.Player, error) {
	index, err := s.playerIndex(ctx)
	if err != nil {
		return domainplayers.Player{}, err
	}
	for _, p := range index {
		if p.ID == playerID {
			return p, nil
		}
	}
	return domainplayers.Player{}, fmt.Errorf("player %d: %w", playerID, domain.ErrNotFound)
}

func buildStats(player domainplayers.Player, career domainplayers.CareerStats) domainplayers.PlayerStatsOut {
	stats := make(map[string]domainplayers.Statline, len(career.Seasons)+1)
	for _, season := range career.Seasons {
		stats[season.SeasonID] = domainplayers.NewStatline(season)
	}
	if career.Career != nil {
		stats[domainplayers.CareerKey] = domainplayers.NewStatline(*career.Career)
	}
	return domainplayers.PlayerStatsOut{
		PlayerName:     player.FullName,
		PlayerID:       player.ID,
		PlayerHeadshot: domainplayers.HeadshotURL(player.ID),
		Stats:          stats,
	}
}

// Compare lines up two players' career averages, or one season's averages when mode is "season".
func (s *Service) Compare(ctx context.Context, p1, p2 int, mode, seasonName string) (domainplayers.Comparison, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	key := domainplayers.CareerKey
	switch mode {
	case domainplayers.ModeCareer:
		seasonName = ""
	case domainplayers.ModeSeason:
		if err := domainstandings.ValidateSeason(seasonName); err != nil {
			return domainplayers.Comparison{}, err
		}
		key = seasonName
	default:
		return domainplayers.Comparison{}, fmt.Errorf("mode_type %q: %w", mode, domain.ErrInvalidInput)
	}
	if p1 <= 0 || p2 <= 0 {
		return domainplayers.Comparison{}, fmt.Errorf("player ids %d/%d: %w", p1, p2, domain.ErrInvalidInput)
	}

	var out [2]domainplayers.PlayerStatsOut
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range []int{p1, p2} {
		g.Go(func() error {
			stats, err := s.PlayerStats(gctx, id)
			out[i] = stats
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domainplayers.Comparison{}, err
	}

	sides := [2]domainplayers.ComparedPlayer{}
	for i, stats := range out {
		line, ok := stats.Stats[key]
		if !ok {
			return domainplayers.Comparison{}, fmt.Errorf("player %d has no %s stats: %w", stats.PlayerID, key, domain.ErrNotFound)
		}
		sides[i] = domainplayers.ComparedPlayer{
			PlayerID:       stats.PlayerID,
			PlayerName:     stats.PlayerName,
			PlayerHeadshot: stats.PlayerHeadshot,
			Stats:          line,
		}
	}
	return domainplayers.Comparison{
		ModeType:   mode,
		SeasonName: seasonName,
		Player1:    sides[0],
		Player2:    sides[1],
		Leaders:    domainplayers.Leaders(sides[0].Stats, sides[1].Stats),
	}, nil
}

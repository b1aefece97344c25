package teststubs

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
)

// StubProvider is a test double for every provider interface.
// Maps keyed by identity return ErrNotFound for unknown keys; Err, when set, wins.
type StubProvider struct {
	Games      map[string][]domaingames.Game // keyed by YYYY-MM-DD
	BoxScores  map[string]boxscores.BoxScore
	Standings  map[string][]standings.Entry
	Index      []players.Player
	Careers    map[int]players.CareerStats
	Articles   []news.ArticleInfo
	Err        error
	Calls      atomic.Int32
	LastGameID string
	Notify     chan struct{}
}

func (s *StubProvider) hit() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}

// FetchGames returns configured games for the day; unknown days have none.
func (s *StubProvider) FetchGames(ctx context.Context, day time.Time) ([]domaingames.Game, error) {
	_ = ctx
	s.hit()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games[day.Format(domaingames.DayKey)], nil
}

// FetchBoxScore returns the configured box score or ErrNotFound.
func (s *StubProvider) FetchBoxScore(ctx context.Context, gameID string) (boxscores.BoxScore, error) {
	_ = ctx
	s.hit()
	s.LastGameID = gameID
	if s.Err != nil {
		return boxscores.BoxScore{}, s.Err
	}
	bs, ok := s.BoxScores[gameID]
	if !ok {
		return boxscores.BoxScore{}, domain.ErrNotFound
	}
	return bs, nil
}

// FetchStandings returns the configured rows for season; unknown seasons have none.
func (s *StubProvider) FetchStandings(ctx context.Context, season string) ([]standings.Entry, error) {
	_ = ctx
	s.hit()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Standings[season], nil
}

// FetchPlayerIndex returns the configured index.
func (s *StubProvider) FetchPlayerIndex(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.hit()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Index, nil
}

// FetchCareerStats returns configured totals or ErrNotFound.
func (s *StubProvider) FetchCareerStats(ctx context.Context, playerID int) (players.CareerStats, error) {
	_ = ctx
	s.hit()
	if s.Err != nil {
		return players.CareerStats{}, s.Err
	}
	c, ok := s.Careers[playerID]
	if !ok {
		return players.CareerStats{}, domain.ErrNotFound
	}
	return c, nil
}

// FetchNews returns the configured articles.
func (s *StubProvider) FetchNews(ctx context.Context) ([]news.ArticleInfo, error) {
	_ = ctx
	s.hit()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Articles, nil
}

// StubWaiter is a test double for a call queue.
type StubWaiter struct {
	Delay time.Duration
	Err   error
	Calls atomic.Int32
}

// Wait reports Delay and Err without sleeping.
func (w *StubWaiter) Wait(ctx context.Context) (time.Duration, error) {
	_ = ctx
	w.Calls.Add(1)
	return w.Delay, w.Err
}

package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
)

// GameProvider fetches the schedule for one calendar day (only the date part of day is used).
type GameProvider interface {
	FetchGames(ctx context.Context, day time.Time) ([]domaingames.Game, error)
}

// BoxScoreProvider fetches a box score by 10-digit game id.
// Games that have not started are returned with ScoreExists false.
type BoxScoreProvider interface {
	FetchBoxScore(ctx context.Context, gameID string) (boxscores.BoxScore, error)
}

// StandingsProvider fetches league standings for a season id such as "2023-24".
type StandingsProvider interface {
	FetchStandings(ctx context.Context, season string) ([]standings.Entry, error)
}

// PlayerProvider fetches the league-wide player index and per-player career totals.
type PlayerProvider interface {
	FetchPlayerIndex(ctx context.Context) ([]players.Player, error)
	FetchCareerStats(ctx context.Context, playerID int) (players.CareerStats, error)
}

// NewsProvider fetches recent headlines.
type NewsProvider interface {
	FetchNews(ctx context.Context) ([]news.ArticleInfo, error)
}

// StatsProvider combines all stats capabilities.
type StatsProvider interface {
	GameProvider
	BoxScoreProvider
	StandingsProvider
	PlayerProvider
}

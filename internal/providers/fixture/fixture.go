// Package fixture serves static NBA data for local development and tests.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/teams"
)

// Game ids served by the fixture; the first is final, the second has not tipped off.
const (
	FinalGameID     = "0022300001"
	ScheduledGameID = "0022300002"
)

var (
	celtics  = teams.Team{TeamID: 1610612738, City: "Boston", Name: "Celtics", Tricode: "BOS"}
	lakers   = teams.Team{TeamID: 1610612747, City: "Los Angeles", Name: "Lakers", Tricode: "LAL"}
	warriors = teams.Team{TeamID: 1610612744, City: "Golden State", Name: "Warriors", Tricode: "GSW"}
	heat     = teams.Team{TeamID: 1610612748, City: "Miami", Name: "Heat", Tricode: "MIA"}
)

// Provider returns a static data set useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns the same two games on every day: one final, one scheduled.
func (p *Provider) FetchGames(ctx context.Context, day time.Time) ([]domaingames.Game, error) {
	_ = ctx
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	final := domaingames.Game{
		GameID:    FinalGameID,
		Status:    "Final",
		StartTime: start.Add(23*time.Hour + 30*time.Minute).Format(time.RFC3339),
		Period:    4,
		HomeTeam:  withScore(celtics, 114),
		AwayTeam:  withScore(lakers, 105),
	}
	scheduled := domaingames.Game{
		GameID:    ScheduledGameID,
		Status:    "10:00 pm ET",
		StartTime: start.Add(26 * time.Hour).Format(time.RFC3339),
		Period:    0,
		HomeTeam:  withScore(warriors, 0),
		AwayTeam:  withScore(heat, 0),
	}
	return []domaingames.Game{final, scheduled}, nil
}

func withScore(t teams.Team, score int) teams.Team {
	t.Score = score
	t.Logo = teams.LogoURL(t.TeamID)
	return t
}

// FetchBoxScore knows the two fixture games; anything else is not found.
func (p *Provider) FetchBoxScore(ctx context.Context, gameID string) (boxscores.BoxScore, error) {
	_ = ctx
	switch gameID {
	case FinalGameID:
		return boxscores.BoxScore{
			GameID: gameID,
			Team0: boxTeam(celtics,
				boxscores.TeamStats{FGM: 42, FGA: 88, FG3M: 16, FG3A: 40, FTM: 14, FTA: 17, OReb: 9, DReb: 36, Ast: 27, Stl: 7, Blk: 6, Tov: 11, Pts: 114, PF: 16},
				line(1628369, "Jayson Tatum", "F", "37:02", boxscores.TeamStats{FGM: 11, FGA: 22, FG3M: 4, FG3A: 10, FTM: 5, FTA: 6, DReb: 9, Ast: 5, Pts: 31, PF: 2}),
				line(1627759, "Jaylen Brown", "G", "35:44", boxscores.TeamStats{FGM: 9, FGA: 18, FG3M: 2, FG3A: 6, FTM: 4, FTA: 4, OReb: 1, DReb: 5, Ast: 3, Pts: 24, PF: 3}),
			),
			Team1: boxTeam(lakers,
				boxscores.TeamStats{FGM: 39, FGA: 86, FG3M: 11, FG3A: 33, FTM: 16, FTA: 21, OReb: 11, DReb: 31, Ast: 24, Stl: 6, Blk: 4, Tov: 13, Pts: 105, PF: 18},
				line(2544, "LeBron James", "F", "36:20", boxscores.TeamStats{FGM: 10, FGA: 19, FG3M: 2, FG3A: 6, FTM: 6, FTA: 8, OReb: 1, DReb: 7, Ast: 9, Pts: 28, PF: 1}),
				line(203076, "Anthony Davis", "C", "35:10", boxscores.TeamStats{FGM: 9, FGA: 17, FTM: 5, FTA: 6, OReb: 4, DReb: 10, Ast: 3, Blk: 3, Pts: 23, PF: 4}),
			),
			ScoreExists: true,
		}, nil
	case ScheduledGameID:
		return boxscores.BoxScore{
			GameID:      gameID,
			Team0:       boxscores.BoxTeam{TeamID: warriors.TeamID, TeamCity: warriors.City, TeamName: warriors.Name, PlayerStats: []boxscores.PlayerLine{}},
			Team1:       boxscores.BoxTeam{TeamID: heat.TeamID, TeamCity: heat.City, TeamName: heat.Name, PlayerStats: []boxscores.PlayerLine{}},
			ScoreExists: false,
		}, nil
	default:
		return boxscores.BoxScore{}, fmt.Errorf("fixture box score %s: %w", gameID, domain.ErrNotFound)
	}
}

func boxTeam(t teams.Team, stats boxscores.TeamStats, lines ...boxscores.PlayerLine) boxscores.BoxTeam {
	return boxscores.BoxTeam{
		TeamID:      t.TeamID,
		TeamCity:    t.City,
		TeamName:    t.Name,
		TeamStats:   stats.WithPercentages(),
		PlayerStats: lines,
	}
}

func line(id int, name, position, minutes string, stats boxscores.TeamStats) boxscores.PlayerLine {
	return boxscores.PlayerLine{
		PlayerID:   id,
		PlayerName: name,
		Position:   position,
		Minutes:    minutes,
		TeamStats:  stats.WithPercentages(),
	}
}

// FetchStandings returns the same four-team table for any season.
func (p *Provider) FetchStandings(ctx context.Context, season string) ([]standings.Entry, error) {
	_ = ctx
	_ = season
	entry := func(t teams.Team, conf string, seed, wins, losses int, streak int, diff float64) standings.Entry {
		return standings.Entry{
			Name:       t.Name,
			City:       t.City,
			ID:         t.TeamID,
			Conference: conf,
			Seed:       seed,
			Wins:       wins,
			Losses:     losses,
			Pct:        domain.Round(float64(wins)/float64(wins+losses), 3),
			Streak:     streak,
			Diff:       diff,
			ImgHref:    teams.LogoURL(t.TeamID),
		}
	}
	return []standings.Entry{
		entry(celtics, standings.ConferenceEast, 1, 64, 18, 3, 11.3),
		entry(heat, standings.ConferenceEast, 2, 46, 36, -1, 0.4),
		entry(lakers, standings.ConferenceWest, 1, 47, 35, 2, 0.6),
		entry(warriors, standings.ConferenceWest, 2, 46, 36, -2, 1.9),
	}, nil
}

var playerIndex = []players.Player{
	{ID: 893, FullName: "Michael Jordan", Active: false},
	{ID: 977, FullName: "Kobe Bryant", Active: false},
	{ID: 2544, FullName: "LeBron James", Active: true},
	{ID: 201939, FullName: "Stephen Curry", Active: true},
	{ID: 203076, FullName: "Anthony Davis", Active: true},
	{ID: 1627759, FullName: "Jaylen Brown", Active: true},
	{ID: 1628369, FullName: "Jayson Tatum", Active: true},
}

// FetchPlayerIndex returns a handful of current and retired players.
func (p *Provider) FetchPlayerIndex(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(playerIndex))
	copy(out, playerIndex)
	return out, nil
}

// FetchCareerStats returns two seasons of totals for active index players.
func (p *Provider) FetchCareerStats(ctx context.Context, playerID int) (players.CareerStats, error) {
	_ = ctx
	for _, pl := range playerIndex {
		if pl.ID != playerID || !pl.Active {
			continue
		}
		// Scale by id so different players compare differently.
		k := float64(playerID%7 + 1)
		s1 := totals("2022-23", 70, 1500+40*k, 350+10*k, 420+5*k, 0.47)
		s2 := totals("2023-24", 72, 1650+30*k, 380+12*k, 440+6*k, 0.49)
		career := sum(s1, s2)
		return players.CareerStats{PlayerID: playerID, Seasons: []players.Totals{s1, s2}, Career: &career}, nil
	}
	return players.CareerStats{}, fmt.Errorf("fixture player %d: %w", playerID, domain.ErrNotFound)
}

func totals(season string, gp int, pts, ast, reb, fgPct float64) players.Totals {
	fga := domain.Round(pts/2.1, 0)
	fg3a := domain.Round(fga*0.35, 0)
	fta := domain.Round(fga*0.25, 0)
	return players.Totals{
		SeasonID: season,
		GP:       gp,
		Pts:      pts,
		Ast:      ast,
		Reb:      reb,
		Blk:      float64(gp / 2),
		Stl:      float64(gp),
		Tov:      float64(gp * 2),
		PF:       float64(gp * 2),
		FGA:      fga,
		FGM:      domain.Round(fga*fgPct, 0),
		FG3A:     fg3a,
		FG3M:     domain.Round(fg3a*0.37, 0),
		FTA:      fta,
		FTM:      domain.Round(fta*0.8, 0),
		OReb:     domain.Round(reb*0.2, 0),
		DReb:     reb - domain.Round(reb*0.2, 0),
	}
}

func sum(seasons ...players.Totals) players.Totals {
	out := players.Totals{SeasonID: players.CareerKey}
	for _, s := range seasons {
		out.GP += s.GP
		out.Pts += s.Pts
		out.Ast += s.Ast
		out.Reb += s.Reb
		out.Blk += s.Blk
		out.Stl += s.Stl
		out.Tov += s.Tov
		out.PF += s.PF
		out.FGA += s.FGA
		out.FGM += s.FGM
		out.FG3A += s.FG3A
		out.FG3M += s.FG3M
		out.FTA += s.FTA
		out.FTM += s.FTM
		out.OReb += s.OReb
		out.DReb += s.DReb
	}
	return out
}

// FetchNews returns three headlines published shortly before now.
func (p *Provider) FetchNews(ctx context.Context) ([]news.ArticleInfo, error) {
	_ = ctx
	now := p.now().UTC().Truncate(time.Minute)
	stamp := func(ago time.Duration) string { return now.Add(-ago).Format(news.PublishTimeLayout) }
	return []news.ArticleInfo{
		{Title: "Celtics hold off Lakers behind Tatum's 31", Source: "Fixture Wire", Href: "https://example.com/news/celtics-lakers", PublishTime: stamp(30 * time.Minute)},
		{Title: "Curry questionable against Miami", Source: "Fixture Wire", Href: "https://example.com/news/curry-status", PublishTime: stamp(2 * time.Hour)},
		{Title: "Power rankings: the East at the break", Source: "Fixture Daily", Href: "https://example.com/news/power-rankings", PublishTime: stamp(26 * time.Hour)},
	}, nil
}

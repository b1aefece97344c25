package testutil

import (
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/teams"
)

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		GameID:    id,
		Status:    "Final",
		StartTime: "2024-01-05T00:00:00Z",
		Period:    4,
		HomeTeam:  teams.Team{TeamID: 1610612738, City: "Boston", Name: "Celtics", Tricode: "BOS", Score: 112, Logo: teams.LogoURL(1610612738)},
		AwayTeam:  teams.Team{TeamID: 1610612747, City: "Los Angeles", Name: "Lakers", Tricode: "LAL", Score: 104, Logo: teams.LogoURL(1610612747)},
	}
}

// SampleBoxScore returns a played box score with one player per side.
func SampleBoxScore(id string) boxscores.BoxScore {
	side := func(teamID int, city, name string, playerID int, player string) boxscores.BoxTeam {
		stats := boxscores.TeamStats{FGM: 40, FGA: 85, FG3M: 12, FG3A: 30, FTM: 20, FTA: 25, OReb: 10, DReb: 34, Ast: 25, Pts: 112}.WithPercentages()
		return boxscores.BoxTeam{
			TeamID:    teamID,
			TeamCity:  city,
			TeamName:  name,
			TeamStats: stats,
			PlayerStats: []boxscores.PlayerLine{{
				PlayerID:   playerID,
				PlayerName: player,
				Position:   "F",
				Minutes:    "36:12",
				TeamStats:  boxscores.TeamStats{FGM: 10, FGA: 20, Pts: 28}.WithPercentages(),
			}},
		}
	}
	return boxscores.BoxScore{
		GameID:      id,
		Team0:       side(1610612738, "Boston", "Celtics", 1628369, "Jayson Tatum"),
		Team1:       side(1610612747, "Los Angeles", "Lakers", 2544, "LeBron James"),
		ScoreExists: true,
	}
}

// SampleStandings returns two rows per conference for season.
func SampleStandings() []standings.Entry {
	return []standings.Entry{
		{Name: "Celtics", City: "Boston", ID: 1610612738, Conference: standings.ConferenceEast, Seed: 1, Wins: 64, Losses: 18},
		{Name: "Knicks", City: "New York", ID: 1610612752, Conference: standings.ConferenceEast, Seed: 2, Wins: 50, Losses: 32},
		{Name: "Thunder", City: "Oklahoma City", ID: 1610612760, Conference: standings.ConferenceWest, Seed: 1, Wins: 57, Losses: 25},
		{Name: "Nuggets", City: "Denver", ID: 1610612743, Conference: standings.ConferenceWest, Seed: 2, Wins: 57, Losses: 25},
	}
}

// SamplePlayerIndex returns a small mixed active/inactive index.
func SamplePlayerIndex() []players.Player {
	return []players.Player{
		{ID: 893, FullName: "Michael Jordan", Active: false},
		{ID: 2544, FullName: "LeBron James", Active: true},
		{ID: 201939, FullName: "Stephen Curry", Active: true},
		{ID: 977, FullName: "Kobe Bryant", Active: false},
		{ID: 1628369, FullName: "Jayson Tatum", Active: true},
	}
}

// SampleCareer returns two seasons plus career totals for playerID.
func SampleCareer(playerID int) players.CareerStats {
	s1 := players.Totals{SeasonID: "2022-23", TeamAbbr: "LAL", GP: 55, Pts: 1590, Ast: 375, Reb: 457, Blk: 32, Stl: 50, Tov: 178, PF: 88, FGA: 1109, FGM: 609, FG3A: 321, FG3M: 99, FTA: 360, FTM: 273, OReb: 65, DReb: 392}
	s2 := players.Totals{SeasonID: "2023-24", TeamAbbr: "LAL", GP: 71, Pts: 1822, Ast: 589, Reb: 518, Blk: 38, Stl: 89, Tov: 245, PF: 78, FGA: 1270, FGM: 685, FG3A: 389, FG3M: 160, FTA: 394, FTM: 294, OReb: 61, DReb: 457}
	career := players.Totals{SeasonID: players.CareerKey, GP: s1.GP + s2.GP, Pts: s1.Pts + s2.Pts, Ast: s1.Ast + s2.Ast, Reb: s1.Reb + s2.Reb, FGA: s1.FGA + s2.FGA, FGM: s1.FGM + s2.FGM}
	return players.CareerStats{PlayerID: playerID, Seasons: []players.Totals{s1, s2}, Career: &career}
}

// SampleArticles returns headlines already in the published order.
func SampleArticles() []news.ArticleInfo {
	return []news.ArticleInfo{
		{Title: "Late game winner", Source: "NBA.com", Href: "https://www.nba.com/news/winner", PublishTime: "2024-01-05T03:00:00Z"},
		{Title: "Trade roundup", Source: "ESPN", Href: "https://www.espn.com/nba/story/trades", PublishTime: "2024-01-04T18:30:00Z"},
	}
}

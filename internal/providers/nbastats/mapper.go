package nbastats

import (
	"strings"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/teams"
)

func mapGame(g scoreboardGame) domaingames.Game {
	return domaingames.Game{
		GameID:    g.GameID,
		Status:    strings.TrimSpace(g.GameStatusText),
		StartTime: g.GameTimeUTC,
		Period:    g.Period,
		HomeTeam:  mapTeam(g.HomeTeam),
		AwayTeam:  mapTeam(g.AwayTeam),
	}
}

func mapTeam(t scoreboardTeam) teams.Team {
	return teams.Team{
		TeamID:  t.TeamID,
		City:    t.TeamCity,
		Name:    t.TeamName,
		Tricode: t.TeamTricode,
		Score:   t.Score,
		Logo:    teams.LogoURL(t.TeamID),
	}
}

func mapStatistics(s statistics) boxscores.TeamStats {
	return boxscores.TeamStats{
		FGM:  s.FieldGoalsMade,
		FGA:  s.FieldGoalsAttempted,
		FG3M: s.ThreePointersMade,
		FG3A: s.ThreePointersAttempted,
		FTM:  s.FreeThrowsMade,
		FTA:  s.FreeThrowsAttempted,
		OReb: s.ReboundsOffensive,
		DReb: s.ReboundsDefensive,
		Ast:  s.Assists,
		Stl:  s.Steals,
		Blk:  s.Blocks,
		Tov:  s.Turnovers,
		Pts:  s.Points,
		PF:   s.FoulsPersonal,
	}.WithPercentages()
}

func mapBoxTeam(t boxScoreTeam) boxscores.BoxTeam {
	lines := make([]boxscores.PlayerLine, 0, len(t.Players))
	for _, p := range t.Players {
		lines = append(lines, boxscores.PlayerLine{
			PlayerID:   p.PersonID,
			PlayerName: strings.TrimSpace(p.FirstName + " " + p.FamilyName),
			Position:   p.Position,
			Minutes:    p.Statistics.Minutes,
			TeamStats:  mapStatistics(p.Statistics),
		})
	}
	return boxscores.BoxTeam{
		TeamID:      t.TeamID,
		TeamCity:    t.TeamCity,
		TeamName:    t.TeamName,
		TeamStats:   mapStatistics(t.Statistics),
		PlayerStats: lines,
	}
}

// playerCount is how many player rows the traditional box score carries.
func (r boxScoreResponse) playerCount() int {
	return len(r.BoxScoreTraditional.HomeTeam.Players) + len(r.BoxScoreTraditional.AwayTeam.Players)
}

func mapBoxScore(gameID string, r boxScoreResponse) boxscores.BoxScore {
	return boxscores.BoxScore{
		GameID:      gameID,
		Team0:       mapBoxTeam(r.BoxScoreTraditional.HomeTeam),
		Team1:       mapBoxTeam(r.BoxScoreTraditional.AwayTeam),
		ScoreExists: true,
	}
}

// mapSummary builds the box score of a game that has no stats yet.
func mapSummary(gameID string, r boxScoreSummaryResponse) boxscores.BoxScore {
	side := func(t scoreboardTeam) boxscores.BoxTeam {
		return boxscores.BoxTeam{
			TeamID:      t.TeamID,
			TeamCity:    t.TeamCity,
			TeamName:    t.TeamName,
			PlayerStats: []boxscores.PlayerLine{},
		}
	}
	return boxscores.BoxScore{
		GameID:      gameID,
		Team0:       side(r.BoxScoreSummary.HomeTeam),
		Team1:       side(r.BoxScoreSummary.AwayTeam),
		ScoreExists: false,
	}
}

func mapStandings(rs resultSet) []standings.Entry {
	rows := rs.rows()
	out := make([]standings.Entry, 0, len(rows))
	for _, r := range rows {
		id := r.int("TeamID")
		out = append(out, standings.Entry{
			Name:       r.str("TeamName"),
			City:       r.str("TeamCity"),
			ID:         id,
			Conference: r.str("Conference"),
			Clinch:     strings.TrimSpace(r.str("ClinchIndicator")),
			Seed:       r.int("PlayoffRank"),
			Wins:       r.int("WINS"),
			Losses:     r.int("LOSSES"),
			Pct:        r.float("WinPCT"),
			GamesBack:  r.float("ConferenceGamesBack"),
			Streak:     r.int("CurrentStreak"),
			Diff:       r.float("DiffPointsPG"),
			ImgHref:    teams.LogoURL(id),
		})
	}
	return out
}

func mapTotals(r row) players.Totals {
	return players.Totals{
		SeasonID: r.str("SEASON_ID"),
		TeamAbbr: r.str("TEAM_ABBREVIATION"),
		GP:       r.int("GP"),
		Pts:      r.float("PTS"),
		Ast:      r.float("AST"),
		Reb:      r.float("REB"),
		Blk:      r.float("BLK"),
		Stl:      r.float("STL"),
		Tov:      r.float("TOV"),
		PF:       r.float("PF"),
		FGA:      r.float("FGA"),
		FGM:      r.float("FGM"),
		FG3A:     r.float("FG3A"),
		FG3M:     r.float("FG3M"),
		FTA:      r.float("FTA"),
		FTM:      r.float("FTM"),
		OReb:     r.float("OREB"),
		DReb:     r.float("DREB"),
	}
}

// mapSeasons keeps one row per season, preferring the combined row for traded players.
func mapSeasons(rs resultSet) []players.Totals {
	var order []string
	bySeason := make(map[string]players.Totals)
	for _, r := range rs.rows() {
		t := mapTotals(r)
		if t.SeasonID == "" {
			continue
		}
		existing, seen := bySeason[t.SeasonID]
		if !seen {
			order = append(order, t.SeasonID)
		}
		if !seen || (existing.TeamAbbr != combinedTeamAbbr && t.TeamAbbr == combinedTeamAbbr) {
			bySeason[t.SeasonID] = t
		}
	}
	out := make([]players.Totals, 0, len(order))
	for _, id := range order {
		out = append(out, bySeason[id])
	}
	return out
}

func mapCareer(playerID int, r resultSetsResponse) players.CareerStats {
	out := players.CareerStats{PlayerID: playerID, Seasons: []players.Totals{}}
	if rs, ok := r.find(resultSeasonTotals); ok {
		out.Seasons = mapSeasons(rs)
	}
	if rs, ok := r.find(resultCareerTotals); ok {
		if rows := rs.rows(); len(rows) > 0 {
			career := mapTotals(rows[0])
			career.SeasonID = players.CareerKey
			out.Career = &career
		}
	}
	return out
}

func mapPlayerIndex(rs resultSet) []players.Player {
	rows := rs.rows()
	out := make([]players.Player, 0, len(rows))
	for _, r := range rows {
		id := r.int("PERSON_ID")
		name := strings.TrimSpace(r.str("DISPLAY_FIRST_LAST"))
		if id <= 0 || name == "" {
			continue
		}
		out = append(out, players.Player{
			ID:       id,
			FullName: name,
			Active:   r.int("ROSTERSTATUS") == 1,
		})
	}
	return out
}

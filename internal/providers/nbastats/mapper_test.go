package nbastats

import (
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
)

func decodeResultSets(t *testing.T, raw string) resultSetsResponse {
	t.Helper()
	var out resultSetsResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}

func TestMapStandingsRenamesColumns(t *testing.T) {
	payload := decodeResultSets(t, `{"resultSets":[{"name":"Standings",
		"headers":["TeamID","TeamCity","TeamName","Conference","ClinchIndicator","PlayoffRank","WINS","LOSSES","WinPCT","ConferenceGamesBack","CurrentStreak","DiffPointsPG"],
		"rowSet":[[1610612738,"Boston","Celtics","East"," - x",1,64,18,0.78,0.0,7,11.3],
		          [1610612752,"New York","Knicks","East","",2,50,32,0.61,"14.0",-2,4.1]]}]}`)

	rs, _ := payload.find(resultStandings)
	got := mapStandings(rs)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	first := got[0]
	if first.ID != 1610612738 || first.Name != "Celtics" || first.City != "Boston" || first.Seed != 1 {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.Clinch != "- x" || first.Streak != 7 || first.Diff != 11.3 || first.Pct != 0.78 {
		t.Fatalf("unexpected first row stats %+v", first)
	}
	if first.ImgHref != "https://cdn.nba.com/logos/nba/1610612738/primary/D/logo.svg" {
		t.Fatalf("unexpected logo %s", first.ImgHref)
	}
	if got[1].GamesBack != 14 || got[1].Streak != -2 {
		t.Fatalf("expected string games back to parse, got %+v", got[1])
	}
}

func TestMapCareerPrefersCombinedRow(t *testing.T) {
	payload := decodeResultSets(t, `{"resultSets":[
		{"name":"SeasonTotalsRegularSeason","headers":["SEASON_ID","TEAM_ABBREVIATION","GP","PTS"],
		 "rowSet":[["2017-18","CLE",82,2251],
		           ["2018-19","NOP",20,400],["2018-19","TOT",60,1500],["2018-19","LAL",40,1100]]},
		{"name":"CareerTotalsRegularSeason","headers":["TEAM_ID","GP","PTS"],"rowSet":[[0,142,3751]]}]}`)

	got := mapCareer(2544, payload)
	if len(got.Seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %+v", got.Seasons)
	}
	if got.Seasons[1].TeamAbbr != "TOT" || got.Seasons[1].GP != 60 {
		t.Fatalf("expected combined row for traded season, got %+v", got.Seasons[1])
	}
	if got.Career == nil || got.Career.SeasonID != players.CareerKey || got.Career.Pts != 3751 {
		t.Fatalf("unexpected career totals %+v", got.Career)
	}
}

func TestMapPlayerIndexSkipsBlankRows(t *testing.T) {
	payload := decodeResultSets(t, `{"resultSets":[{"name":"CommonAllPlayers",
		"headers":["PERSON_ID","DISPLAY_FIRST_LAST","ROSTERSTATUS"],
		"rowSet":[[2544,"LeBron James",1],[893,"Michael Jordan",0],[0,"",0]]}]}`)

	rs, _ := payload.find(resultCommonAllPlayer)
	got := mapPlayerIndex(rs)
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %+v", got)
	}
	if !got[0].Active || got[1].Active {
		t.Fatalf("unexpected active flags %+v", got)
	}
}

func TestMapBoxScoreComputesPercentages(t *testing.T) {
	var payload boxScoreResponse
	raw := `{"boxScoreTraditional":{"gameId":"0022300061",
		"homeTeam":{"teamId":1,"teamCity":"Boston","teamName":"Celtics",
			"statistics":{"fieldGoalsMade":40,"fieldGoalsAttempted":80,"reboundsOffensive":10,"reboundsDefensive":30,"points":108},
			"players":[{"personId":5,"firstName":"Jayson","familyName":"Tatum","position":"F",
				"statistics":{"minutes":"38:10","fieldGoalsMade":10,"fieldGoalsAttempted":20,"points":30}}]},
		"awayTeam":{"teamId":2,"teamCity":"Miami","teamName":"Heat","statistics":{},"players":[]}}}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	got := mapBoxScore("0022300061", payload)
	if !got.ScoreExists || got.Team0.TeamCity != "Boston" || got.Team1.TeamName != "Heat" {
		t.Fatalf("unexpected box score %+v", got)
	}
	if got.Team0.TeamStats.FGPct != 0.5 || got.Team0.TeamStats.Reb != 40 {
		t.Fatalf("unexpected team stats %+v", got.Team0.TeamStats)
	}
	line := got.Team0.PlayerStats[0]
	if line.PlayerName != "Jayson Tatum" || line.Minutes != "38:10" || line.Pts != 30 {
		t.Fatalf("unexpected player line %+v", line)
	}
	if got.Team1.PlayerStats == nil {
		t.Fatal("expected empty, non-nil player list")
	}
}

func TestRowAccessorsTolerateMissingAndMistypedValues(t *testing.T) {
	r := row{"n": "abc", "s": 12.5, "nil": nil}
	if r.float("n") != 0 || r.int("missing") != 0 {
		t.Fatal("expected zero for unparsable values")
	}
	if r.str("s") != "12.5" || r.str("nil") != "" {
		t.Fatalf("unexpected string conversions %q %q", r.str("s"), r.str("nil"))
	}
}

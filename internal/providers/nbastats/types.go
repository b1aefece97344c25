package nbastats

import (
	"strconv"
	"strings"
)

// resultSetsResponse is the legacy tabular envelope used by most stats endpoints.
type resultSetsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (r resultSetsResponse) find(name string) (resultSet, bool) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, true
		}
	}
	return resultSet{}, false
}

// row is one rowSet entry addressed by column header.
type row map[string]any

func (rs resultSet) rows() []row {
	out := make([]row, 0, len(rs.RowSet))
	for _, values := range rs.RowSet {
		r := make(row, len(rs.Headers))
		for i, h := range rs.Headers {
			if i < len(values) {
				r[h] = values[i]
			}
		}
		out = append(out, r)
	}
	return out
}

func (r row) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

func (r row) float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (r row) int(key string) int {
	return int(r.float(key))
}

type scoreboardResponse struct {
	Scoreboard struct {
		GameDate string           `json:"gameDate"`
		Games    []scoreboardGame `json:"games"`
	} `json:"scoreboard"`
}

type scoreboardGame struct {
	GameID         string         `json:"gameId"`
	GameStatus     int            `json:"gameStatus"`
	GameStatusText string         `json:"gameStatusText"`
	Period         int            `json:"period"`
	GameTimeUTC    string         `json:"gameTimeUTC"`
	HomeTeam       scoreboardTeam `json:"homeTeam"`
	AwayTeam       scoreboardTeam `json:"awayTeam"`
}

type scoreboardTeam struct {
	TeamID      int    `json:"teamId"`
	TeamCity    string `json:"teamCity"`
	TeamName    string `json:"teamName"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}

type boxScoreResponse struct {
	BoxScoreTraditional struct {
		GameID   string       `json:"gameId"`
		HomeTeam boxScoreTeam `json:"homeTeam"`
		AwayTeam boxScoreTeam `json:"awayTeam"`
	} `json:"boxScoreTraditional"`
}

type boxScoreTeam struct {
	TeamID      int              `json:"teamId"`
	TeamCity    string           `json:"teamCity"`
	TeamName    string           `json:"teamName"`
	TeamTricode string           `json:"teamTricode"`
	Players     []boxScorePlayer `json:"players"`
	Statistics  statistics       `json:"statistics"`
}

type boxScorePlayer struct {
	PersonID   int        `json:"personId"`
	FirstName  string     `json:"firstName"`
	FamilyName string     `json:"familyName"`
	Position   string     `json:"position"`
	Statistics statistics `json:"statistics"`
}

type statistics struct {
	Minutes                string `json:"minutes"`
	FieldGoalsMade         int    `json:"fieldGoalsMade"`
	FieldGoalsAttempted    int    `json:"fieldGoalsAttempted"`
	ThreePointersMade      int    `json:"threePointersMade"`
	ThreePointersAttempted int    `json:"threePointersAttempted"`
	FreeThrowsMade         int    `json:"freeThrowsMade"`
	FreeThrowsAttempted    int    `json:"freeThrowsAttempted"`
	ReboundsOffensive      int    `json:"reboundsOffensive"`
	ReboundsDefensive      int    `json:"reboundsDefensive"`
	Assists                int    `json:"assists"`
	Steals                 int    `json:"steals"`
	Blocks                 int    `json:"blocks"`
	Turnovers              int    `json:"turnovers"`
	FoulsPersonal          int    `json:"foulsPersonal"`
	Points                 int    `json:"points"`
}

type boxScoreSummaryResponse struct {
	BoxScoreSummary struct {
		GameID         string         `json:"gameId"`
		GameStatusText string         `json:"gameStatusText"`
		HomeTeam       scoreboardTeam `json:"homeTeam"`
		AwayTeam       scoreboardTeam `json:"awayTeam"`
	} `json:"boxScoreSummary"`
}

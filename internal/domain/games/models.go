package games

import "github.com/preston-bernstein/nba-stats-proxy/internal/domain/teams"

// Game is the canonical schedule entry exposed by /games/{day}.
// GameID keeps the upstream 10-digit string so leading zeros survive the round trip.
type Game struct {
	GameID    string     `json:"game_id"`
	Status    string     `json:"status"`
	StartTime string     `json:"start_time"`
	Period    int        `json:"period"`
	HomeTeam  teams.Team `json:"home_team"`
	AwayTeam  teams.Team `json:"away_team"`
}

// DayKey is the layout used for cache keys and upstream GameDate params.
const DayKey = "2006-01-02"

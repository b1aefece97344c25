package boxscores

import "github.com/preston-bernstein/nba-stats-proxy/internal/domain"

// TeamStats holds counting stats for a team or player in one game.
type TeamStats struct {
	FGM    int     `json:"fgm"`
	FGA    int     `json:"fga"`
	FGPct  float64 `json:"fg_pct"`
	FG3M   int     `json:"fg3m"`
	FG3A   int     `json:"fg3a"`
	FG3Pct float64 `json:"fg3_pct"`
	FTM    int     `json:"ftm"`
	FTA    int     `json:"fta"`
	FTPct  float64 `json:"ft_pct"`
	OReb   int     `json:"oreb"`
	DReb   int     `json:"dreb"`
	Reb    int     `json:"reb"`
	Ast    int     `json:"ast"`
	Stl    int     `json:"stl"`
	Blk    int     `json:"blk"`
	Tov    int     `json:"tov"`
	Pts    int     `json:"pts"`
	PF     int     `json:"pf"`
}

// WithPercentages fills the derived percentage and total rebound fields.
func (s TeamStats) WithPercentages() TeamStats {
	s.FGPct = domain.Pct(float64(s.FGM), float64(s.FGA))
	s.FG3Pct = domain.Pct(float64(s.FG3M), float64(s.FG3A))
	s.FTPct = domain.Pct(float64(s.FTM), float64(s.FTA))
	s.Reb = s.OReb + s.DReb
	return s
}

// PlayerLine is a single player's row in a box score.
type PlayerLine struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
	Minutes    string `json:"minutes"`
	TeamStats
}

// BoxTeam is one team's half of a box score.
type BoxTeam struct {
	TeamID      int          `json:"team_id"`
	TeamCity    string       `json:"team_city"`
	TeamName    string       `json:"team_name"`
	TeamStats   TeamStats    `json:"team_stats"`
	PlayerStats []PlayerLine `json:"player_stats"`
}

// BoxScore is the payload returned by /boxscore/{game_id}.
// ScoreExists is false for games that are scheduled but not yet played.
type BoxScore struct {
	GameID      string  `json:"game_id"`
	Team0       BoxTeam `json:"team_0"`
	Team1       BoxTeam `json:"team_1"`
	ScoreExists bool    `json:"score_exists"`
}

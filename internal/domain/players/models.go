package players

import (
	"fmt"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
)

const headshotURLFormat = "https://cdn.nba.com/headshots/nba/latest/1040x760/%d.png"

// CareerKey is the Stats map key holding career totals.
const CareerKey = "career"

// Player is one entry of the league-wide player index.
type Player struct {
	ID       int    `json:"player_id"`
	FullName string `json:"player_name"`
	Active   bool   `json:"active"`
}

// SearchResult is one row returned by /search-player/{name}.
type SearchResult struct {
	PlayerID       int    `json:"player_id"`
	PlayerName     string `json:"player_name"`
	Active         bool   `json:"active"`
	PlayerHeadshot string `json:"player_headshot"`
}

// NewSearchResult decorates an index entry with its headshot link.
func NewSearchResult(p Player) SearchResult {
	return SearchResult{
		PlayerID:       p.ID,
		PlayerName:     p.FullName,
		Active:         p.Active,
		PlayerHeadshot: HeadshotURL(p.ID),
	}
}

// HeadshotURL builds the CDN headshot link for a player id.
func HeadshotURL(playerID int) string {
	return fmt.Sprintf(headshotURLFormat, playerID)
}

// Totals are raw counting stats for a season (or a career) as reported upstream.
type Totals struct {
	SeasonID string  `json:"season_id"`
	TeamAbbr string  `json:"team_abbreviation"`
	GP       int     `json:"gp"`
	Pts      float64 `json:"pts"`
	Ast      float64 `json:"ast"`
	Reb      float64 `json:"reb"`
	Blk      float64 `json:"blk"`
	Stl      float64 `json:"stl"`
	Tov      float64 `json:"tov"`
	PF       float64 `json:"pf"`
	FGA      float64 `json:"fga"`
	FGM      float64 `json:"fgm"`
	FG3A     float64 `json:"fg3a"`
	FG3M     float64 `json:"fg3m"`
	FTA      float64 `json:"fta"`
	FTM      float64 `json:"ftm"`
	OReb     float64 `json:"oreb"`
	DReb     float64 `json:"dreb"`
}

// CareerStats is what a provider returns for a player's regular-season history.
type CareerStats struct {
	PlayerID int      `json:"player_id"`
	Seasons  []Totals `json:"seasons"`
	Career   *Totals  `json:"career,omitempty"`
}

// Statline is the per-game shape exposed to clients.
type Statline struct {
	GP     int     `json:"gp"`
	Pts    float64 `json:"pts"`
	Ast    float64 `json:"ast"`
	Reb    float64 `json:"reb"`
	Blk    float64 `json:"blk"`
	Stl    float64 `json:"stl"`
	Tov    float64 `json:"tov"`
	PF     float64 `json:"pf"`
	FGA    float64 `json:"fga"`
	FGM    float64 `json:"fgm"`
	FGPct  float64 `json:"fg_pct"`
	FG3A   float64 `json:"fg3a"`
	FG3M   float64 `json:"fg3m"`
	FG3Pct float64 `json:"fg3_pct"`
	FTA    float64 `json:"fta"`
	FTM    float64 `json:"ftm"`
	FTPct  float64 `json:"ft_pct"`
	OReb   float64 `json:"oreb"`
	DReb   float64 `json:"dreb"`
	EFGPct float64 `json:"efg_pct"`
}

// NewStatline converts totals into per-game averages; percentages use the totals.
func NewStatline(t Totals) Statline {
	return Statline{
		GP:     t.GP,
		Pts:    domain.PerGame(t.Pts, t.GP),
		Ast:    domain.PerGame(t.Ast, t.GP),
		Reb:    domain.PerGame(t.Reb, t.GP),
		Blk:    domain.PerGame(t.Blk, t.GP),
		Stl:    domain.PerGame(t.Stl, t.GP),
		Tov:    domain.PerGame(t.Tov, t.GP),
		PF:     domain.PerGame(t.PF, t.GP),
		FGA:    domain.PerGame(t.FGA, t.GP),
		FGM:    domain.PerGame(t.FGM, t.GP),
		FGPct:  domain.Pct(t.FGM, t.FGA),
		FG3A:   domain.PerGame(t.FG3A, t.GP),
		FG3M:   domain.PerGame(t.FG3M, t.GP),
		FG3Pct: domain.Pct(t.FG3M, t.FG3A),
		FTA:    domain.PerGame(t.FTA, t.GP),
		FTM:    domain.PerGame(t.FTM, t.GP),
		FTPct:  domain.Pct(t.FTM, t.FTA),
		OReb:   domain.PerGame(t.OReb, t.GP),
		DReb:   domain.PerGame(t.DReb, t.GP),
		EFGPct: domain.EffectiveFGPct(t.FGM, t.FG3M, t.FGA),
	}
}

// PlayerStatsOut is the payload returned by /player-stats/{player_id}.
// Stats is keyed by season id ("2023-24") plus CareerKey.
type PlayerStatsOut struct {
	PlayerName     string              `json:"player_name"`
	PlayerID       int                 `json:"player_id"`
	PlayerHeadshot string              `json:"player_headshot"`
	Stats          map[string]Statline `json:"stats"`
}

package players

// Comparison modes accepted by /compare/.
const (
	ModeCareer = "career"
	ModeSeason = "season"
)

// ComparedPlayer is one side of a comparison.
type ComparedPlayer struct {
	PlayerID       int      `json:"player_id"`
	PlayerName     string   `json:"player_name"`
	PlayerHeadshot string   `json:"player_headshot"`
	Stats          Statline `json:"stats"`
}

// Comparison is the payload returned by /compare/.
// Leaders maps a stat name to 1 or 2 for the better player, 0 on a tie.
type Comparison struct {
	ModeType   string         `json:"mode_type"`
	SeasonName string         `json:"season_name,omitempty"`
	Player1    ComparedPlayer `json:"player_1"`
	Player2    ComparedPlayer `json:"player_2"`
	Leaders    map[string]int `json:"leaders"`
}

// lowerIsBetter lists stats where the smaller value leads.
var lowerIsBetter = map[string]bool{"tov": true, "pf": true}

// Leaders compares two statlines field by field.
func Leaders(a, b Statline) map[string]int {
	av, bv := a.values(), b.values()
	out := make(map[string]int, len(av))
	for name, x := range av {
		y := bv[name]
		switch {
		case x == y:
			out[name] = 0
		case (x > y) != lowerIsBetter[name]:
			out[name] = 1
		default:
			out[name] = 2
		}
	}
	return out
}

func (s Statline) values() map[string]float64 {
	return map[string]float64{
		"pts":     s.Pts,
		"ast":     s.Ast,
		"reb":     s.Reb,
		"blk":     s.Blk,
		"stl":     s.Stl,
		"tov":     s.Tov,
		"pf":      s.PF,
		"fg_pct":  s.FGPct,
		"fg3_pct": s.FG3Pct,
		"ft_pct":  s.FTPct,
		"efg_pct": s.EFGPct,
		"oreb":    s.OReb,
		"dreb":    s.DReb,
	}
}

package standings

import "sort"

// Conference names as reported upstream.
const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)

// Entry is one team row in the standings table.
type Entry struct {
	Name       string  `json:"name"`
	City       string  `json:"city"`
	ID         int     `json:"id"`
	Conference string  `json:"conference"`
	Clinch     string  `json:"clinch"`
	Seed       int     `json:"seed"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Pct        float64 `json:"pct"`
	GamesBack  float64 `json:"gamesBack"`
	Streak     int     `json:"streak"`
	Diff       float64 `json:"diff"`
	ImgHref    string  `json:"img_href"`
}

// Standings is the payload returned by /standings/{season_id}.
type Standings struct {
	Season string  `json:"season"`
	East   []Entry `json:"east"`
	West   []Entry `json:"west"`
}

// Split groups entries by conference, each ordered by seed.
func Split(season string, entries []Entry) Standings {
	out := Standings{Season: season, East: []Entry{}, West: []Entry{}}
	for _, e := range entries {
		switch e.Conference {
		case ConferenceEast:
			out.East = append(out.East, e)
		case ConferenceWest:
			out.West = append(out.West, e)
		}
	}
	bySeed := func(list []Entry) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Seed < list[j].Seed })
	}
	bySeed(out.East)
	bySeed(out.West)
	return out
}

// Empty reports whether neither conference has any rows.
func (s Standings) Empty() bool {
	return len(s.East) == 0 && len(s.West) == 0
}

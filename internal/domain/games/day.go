package games

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
)

var dayLayouts = []string{DayKey, "01/02/2006", "01-02-2006"}

// leagueLocation is the calendar the league schedules games by.
var leagueLocation = loadLeagueLocation()

func loadLeagueLocation() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// LeagueDay returns the league calendar date at t as midnight UTC, the same
// shape ParseDay produces, so both key the games cache identically.
func LeagueDay(t time.Time) time.Time {
	local := t.In(leagueLocation)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay accepts YYYY-MM-DD, MM/DD/YYYY and MM-DD-YYYY, URL-escaped or not.
func ParseDay(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("day %q: %w", raw, domain.ErrInvalidInput)
}

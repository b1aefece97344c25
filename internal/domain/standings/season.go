package standings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
)

// ValidateSeason checks the "2023-24" form: two consecutive years, the second abbreviated.
func ValidateSeason(season string) error {
	if len(season) != 7 || season[4] != '-' {
		return fmt.Errorf("season %q: %w", season, domain.ErrInvalidInput)
	}
	start, err := strconv.Atoi(season[:4])
	if err != nil || start < 1946 {
		return fmt.Errorf("season %q: %w", season, domain.ErrInvalidInput)
	}
	end, err := strconv.Atoi(season[5:])
	if err != nil || end != (start+1)%100 {
		return fmt.Errorf("season %q: %w", season, domain.ErrInvalidInput)
	}
	return nil
}

// SeasonFor returns the season id in progress at t. Seasons roll over in October.
func SeasonFor(t time.Time) string {
	start := t.Year()
	if t.Month() < time.October {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

package boxscores

import (
	"fmt"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
)

// GameIDLength is the width of upstream game ids, e.g. "0022300061".
const GameIDLength = 10

// ValidateGameID rejects anything but a 10-digit numeric id.
func ValidateGameID(id string) error {
	if len(id) != GameIDLength {
		return fmt.Errorf("game id %q: %w", id, domain.ErrInvalidInput)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("game id %q: %w", id, domain.ErrInvalidInput)
		}
	}
	return nil
}

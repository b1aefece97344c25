package players

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
)

// ParseID parses a positive integer player id.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("player id %q: %w", raw, domain.ErrInvalidInput)
	}
	return id, nil
}

// SearchTerms splits a search query into lower-cased terms; "+" counts as a space.
func SearchTerms(name string) []string {
	return strings.Fields(strings.ToLower(strings.ReplaceAll(name, "+", " ")))
}

// Matches reports whether every term appears in the player's full name.
func (p Player) Matches(terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	full := strings.ToLower(p.FullName)
	for _, term := range terms {
		if !strings.Contains(full, term) {
			return false
		}
	}
	return true
}

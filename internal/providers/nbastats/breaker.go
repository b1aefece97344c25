package nbastats

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
)

// callerGone wraps a request error caused by the caller's own context ending.
type callerGone struct{ err error }

func (e callerGone) Error() string { return e.err.Error() }
func (e callerGone) Unwrap() error { return e.err }

// newBreaker trips after failures consecutive upstream errors and stays open for cooldown.
// Not-found answers and requests abandoned by their caller never count against the upstream.
func newBreaker(failures int, cooldown time.Duration, logger *slog.Logger) *gobreaker.CircuitBreaker {
	if failures <= 0 {
		failures = defaultBreakerFailures
	}
	if cooldown <= 0 {
		cooldown = defaultBreakerCooldown
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		IsSuccessful: func(err error) bool {
			var gone callerGone
			return err == nil || errors.Is(err, domain.ErrNotFound) || errors.As(err, &gone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn(logger, "circuit breaker state change",
				logging.FieldProvider, name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

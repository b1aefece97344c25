package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
)

// Operation names used for metrics and logs.
const (
	OpGames       = "games"
	OpBoxScore    = "boxscore"
	OpStandings   = "standings"
	OpPlayerIndex = "player_index"
	OpCareerStats = "career_stats"
	OpNews        = "news"
)

// Waiter admits one upstream call; callqueue.CallQueue implements it.
type Waiter interface {
	Wait(ctx context.Context) (time.Duration, error)
}

type gate struct {
	name     string
	queue    Waiter
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// run waits for a queue slot and then performs call, recording the attempt.
func run[T any](ctx context.Context, g gate, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if g.queue != nil {
		wait, err := g.queue.Wait(ctx)
		g.recorder.RecordQueueWait(wait)
		if err != nil {
			logWithProvider(ctx, g.logger, slog.LevelWarn, g.name, "queued call abandoned",
				logging.FieldOperation, op, logging.FieldWaitMS, wait.Milliseconds(), "error", err)
			return zero, err
		}
		if wait > 0 {
			logWithProvider(ctx, g.logger, slog.LevelDebug, g.name, "queued call admitted",
				logging.FieldOperation, op, logging.FieldWaitMS, wait.Milliseconds())
		}
	}

	start := time.Now()
	out, err := call(ctx)
	duration := time.Since(start)
	g.recorder.RecordProviderAttempt(op, duration, err)
	if rl, ok := AsRateLimitError(err); ok {
		g.recorder.RecordRateLimit(op, rl.RetryAfter)
	}
	if err != nil {
		logWithProvider(ctx, g.logger, slog.LevelWarn, g.name, "upstream call failed",
			logging.FieldOperation, op, logging.FieldDurationMS, duration.Milliseconds(), "error", err)
		return zero, err
	}
	return out, nil
}

// queuedProvider makes every upstream call wait for a slot on the shared queue.
type queuedProvider struct {
	next StatsProvider
	gate gate
}

// NewQueuedProvider wraps next so each call first waits on queue. name labels logs.
func NewQueuedProvider(name string, next StatsProvider, queue Waiter, recorder *metrics.Recorder, logger *slog.Logger) StatsProvider {
	return &queuedProvider{
		next: next,
		gate: gate{name: name, queue: queue, recorder: recorder, logger: logger},
	}
}

func (p *queuedProvider) FetchGames(ctx context.Context, day time.Time) ([]domaingames.Game, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return run(ctx, p.gate, OpGames, func(ctx context.Context) ([]domaingames.Game, error) {
		return p.next.FetchGames(ctx, day)
	})
}

func (p *queuedProvider) FetchBoxScore(ctx context.Context, gameID string) (boxscores.BoxScore, error) {
	if p.next == nil {
		return boxscores.BoxScore{}, ErrProviderUnavailable
	}
	return run(ctx, p.gate, OpBoxScore, func(ctx context.Context) (boxscores.BoxScore, error) {
		return p.next.FetchBoxScore(ctx, gameID)
	})
}

func (p *queuedProvider) FetchStandings(ctx context.Context, season string) ([]standings.Entry, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return run(ctx, p.gate, OpStandings, func(ctx context.Context) ([]standings.Entry, error) {
		return p.next.FetchStandings(ctx, season)
	})
}

func (p *queuedProvider) FetchPlayerIndex(ctx context.Context) ([]players.Player, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return run(ctx, p.gate, OpPlayerIndex, p.next.FetchPlayerIndex)
}

func (p *queuedProvider) FetchCareerStats(ctx context.Context, playerID int) (players.CareerStats, error) {
	if p.next == nil {
		return players.CareerStats{}, ErrProviderUnavailable
	}
	return run(ctx, p.gate, OpCareerStats, func(ctx context.Context) (players.CareerStats, error) {
		return p.next.FetchCareerStats(ctx, playerID)
	})
}

type queuedNewsProvider struct {
	next NewsProvider
	gate gate
}

// NewQueuedNewsProvider is NewQueuedProvider for the headline scraper.
func NewQueuedNewsProvider(name string, next NewsProvider, queue Waiter, recorder *metrics.Recorder, logger *slog.Logger) NewsProvider {
	return &queuedNewsProvider{
		next: next,
		gate: gate{name: name, queue: queue, recorder: recorder, logger: logger},
	}
}

func (p *queuedNewsProvider) FetchNews(ctx context.Context) ([]news.ArticleInfo, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return run(ctx, p.gate, OpNews, p.next.FetchNews)
}

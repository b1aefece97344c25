package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
)

const defaultSchedule = "@every 5m"

// GamesWarmer loads a day's games (through the cache, so a successful call warms it).
type GamesWarmer interface {
	GamesOn(ctx context.Context, day time.Time) ([]domaingames.Game, error)
}

// StandingsWarmer loads a season's standings.
type StandingsWarmer interface {
	Standings(ctx context.Context, season string) (domainstandings.Standings, error)
}

// Config controls what the poller warms and how often.
type Config struct {
	// Schedule is a cron expression or descriptor such as "@every 5m".
	Schedule string
	// Season is the standings season to warm; empty follows the calendar.
	Season  string
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Poller periodically warms today's games and the current standings.
type Poller struct {
	games     GamesWarmer
	standings StandingsWarmer
	season    string
	schedule  string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time

	cron     *cron.Cron
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
	LastAttempt         time.Time `json:"last_attempt"`
	LastSuccess         time.Time `json:"last_success"`
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New validates the schedule and constructs a Poller. Either warmer may be nil.
func New(games GamesWarmer, standings StandingsWarmer, cfg Config) (*Poller, error) {
	schedule := cfg.Schedule
	if schedule == "" {
		schedule = defaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("poll schedule %q: %w", schedule, err)
	}
	if cfg.Season != "" {
		if err := domainstandings.ValidateSeason(cfg.Season); err != nil {
			return nil, err
		}
	}

	opts := []cron.Option{cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))}
	if cfg.Logger != nil {
		opts = append(opts, cron.WithLogger(cron.PrintfLogger(slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelDebug))))
	}
	return &Poller{
		games:     games,
		standings: standings,
		season:    cfg.Season,
		schedule:  schedule,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		now:       time.Now,
		cron:      cron.New(opts...),
	}, nil
}

// Start warms once, then runs on the schedule until ctx is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started {
		return nil
	}
	if _, err := p.cron.AddFunc(p.schedule, func() { p.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule poller: %w", err)
	}
	p.started = true
	p.cron.Start()
	logging.Info(p.logger, "poller started", slog.String("schedule", p.schedule))

	go p.RunOnce(ctx)
	go func() {
		<-ctx.Done()
		_ = p.Stop(context.Background())
	}()
	return nil
}

// Stop halts the schedule and waits for a running cycle to finish or ctx to expire.
func (p *Poller) Stop(ctx context.Context) error {
	var err error
	p.stopOnce.Do(func() {
		done := p.cron.Stop()
		select {
		case <-done.Done():
			logging.Info(p.logger, "poller stopped")
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

// RunOnce performs a single warm cycle and updates Status.
func (p *Poller) RunOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	today := domaingames.LeagueDay(start)
	var errs []error
	count := 0
	if p.games != nil {
		games, err := p.games.GamesOn(ctx, today)
		if err != nil {
			errs = append(errs, fmt.Errorf("games: %w", err))
		}
		count = len(games)
	}
	season := p.currentSeason()
	if p.standings != nil {
		if _, err := p.standings.Standings(ctx, season); err != nil {
			errs = append(errs, fmt.Errorf("standings %s: %w", season, err))
		}
	}

	err := errors.Join(errs...)
	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(elapsed, err)
	}
	if err != nil {
		logging.Error(p.logger, "poller cycle failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller warmed caches",
		slog.String(logging.FieldDate, today.Format(domaingames.DayKey)),
		slog.String("season", season),
		slog.Int(logging.FieldCount, count),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

func (p *Poller) currentSeason() string {
	if p.season != "" {
		return p.season
	}
	return domainstandings.SeasonFor(p.now())
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

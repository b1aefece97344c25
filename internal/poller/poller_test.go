package poller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
	"github.com/preston-bernstein/nba-stats-proxy/internal/testutil"
)

type stubWarmer struct {
	mu        sync.Mutex
	gamesErr  error
	standErr  error
	days      []time.Time
	seasons   []string
	calls     atomic.Int32
	firstCall chan struct{}
	once      sync.Once
}

func newStubWarmer() *stubWarmer {
	return &stubWarmer{firstCall: make(chan struct{})}
}

func (s *stubWarmer) GamesOn(ctx context.Context, day time.Time) ([]domaingames.Game, error) {
	s.calls.Add(1)
	s.once.Do(func() { close(s.firstCall) })
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = append(s.days, day)
	if s.gamesErr != nil {
		return nil, s.gamesErr
	}
	return []domaingames.Game{testutil.SampleGame("0022300500")}, nil
}

func (s *stubWarmer) Standings(ctx context.Context, season string) (domainstandings.Standings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons = append(s.seasons, season)
	if s.standErr != nil {
		return domainstandings.Standings{}, s.standErr
	}
	return domainstandings.Split(season, testutil.SampleStandings()), nil
}

func TestNewRejectsBadScheduleAndSeason(t *testing.T) {
	if _, err := New(nil, nil, Config{Schedule: "every now and then"}); err == nil {
		t.Fatalf("expected schedule error")
	}
	if _, err := New(nil, nil, Config{Season: "2024"}); err == nil {
		t.Fatalf("expected season error")
	}
	p, err := New(nil, nil, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.schedule != defaultSchedule {
		t.Fatalf("expected default schedule, got %q", p.schedule)
	}
}

func TestRunOnceWarmsLeagueDayDuringEveningGames(t *testing.T) {
	w := newStubWarmer()
	p, err := New(w, w, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 9:30 pm in New York is already the next day in UTC.
	p.now = func() time.Time { return time.Date(2024, 1, 16, 2, 30, 0, 0, time.UTC) }

	p.RunOnce(context.Background())

	if len(w.days) != 1 || w.days[0].Format(domaingames.DayKey) != "2024-01-15" {
		t.Fatalf("expected the league's current day warmed, got %v", w.days)
	}
}

func TestRunOnceWarmsTodayAndSeason(t *testing.T) {
	w := newStubWarmer()
	logger, buf := testutil.NewBufferLogger()
	p, err := New(w, w, Config{Logger: logger, Metrics: metrics.NewRecorder()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	p.RunOnce(context.Background())

	if len(w.days) != 1 || w.days[0].Format(domaingames.DayKey) != "2024-01-15" {
		t.Fatalf("expected today's games warmed, got %v", w.days)
	}
	if len(w.seasons) != 1 || w.seasons[0] != "2023-24" {
		t.Fatalf("expected current season warmed, got %v", w.seasons)
	}
	status := p.Status()
	if !status.IsReady() || status.ConsecutiveFailures != 0 {
		t.Fatalf("expected ready status, got %+v", status)
	}
	if !strings.Contains(buf.String(), "poller warmed caches") {
		t.Fatalf("expected success log, got %s", buf.String())
	}
}

func TestRunOnceUsesConfiguredSeason(t *testing.T) {
	w := newStubWarmer()
	p, err := New(w, w, Config{Season: "2019-20"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.RunOnce(context.Background())
	if w.seasons[0] != "2019-20" {
		t.Fatalf("expected configured season, got %v", w.seasons)
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	w := newStubWarmer()
	w.standErr = errors.New("boom")
	p, err := New(w, w, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		p.RunOnce(context.Background())
	}
	status := p.Status()
	if status.ConsecutiveFailures != 3 {
		t.Fatalf("expected 3 failures, got %d", status.ConsecutiveFailures)
	}
	if !strings.Contains(status.LastError, "boom") {
		t.Fatalf("expected last error recorded, got %q", status.LastError)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready before any success")
	}

	w.standErr = nil
	p.RunOnce(context.Background())
	status = p.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" || !status.IsReady() {
		t.Fatalf("expected recovery, got %+v", status)
	}
}

func TestStatusIsReady(t *testing.T) {
	if (Status{}).IsReady() {
		t.Fatalf("expected zero status not ready")
	}
	if !(Status{LastSuccess: time.Now(), ConsecutiveFailures: 2}).IsReady() {
		t.Fatalf("expected ready with fewer than 3 failures")
	}
	if (Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}).IsReady() {
		t.Fatalf("expected not ready after repeated failures")
	}
}

func TestStartWarmsImmediatelyAndStopsOnCancel(t *testing.T) {
	w := newStubWarmer()
	p, err := New(w, nil, Config{Schedule: "@every 1h"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := p.Start(ctx); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if err := p.Start(ctx); err != nil {
		t.Fatalf("expected second start to be a no-op, got %v", err)
	}

	select {
	case <-w.firstCall:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for initial warm")
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := p.Stop(stopCtx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	if w.calls.Load() != 1 {
		t.Fatalf("expected a single warm for an hourly schedule, got %d", w.calls.Load())
	}
}

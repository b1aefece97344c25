// Package callqueue paces outbound upstream requests.
//
// Every caller reserves a slot at max(now, lastReserved+delay) and sleeps until it arrives, so requests
// leave the process at most once per delay in the order slots were handed out.
package callqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Call is a reserved slot.
type Call struct {
	ReadyTime time.Time
	now       func() time.Time
}

// IsReady reports whether the slot has arrived.
func (c Call) IsReady() bool {
	return !c.clock()().Before(c.ReadyTime)
}

// Delay returns how long the caller still has to wait, never negative.
func (c Call) Delay() time.Duration {
	d := c.ReadyTime.Sub(c.clock()())
	if d < 0 {
		return 0
	}
	return d
}

func (c Call) clock() func() time.Time {
	if c.now == nil {
		return time.Now
	}
	return c.now
}

// CallQueue hands out evenly spaced slots. It is safe for concurrent use.
type CallQueue struct {
	mu          sync.Mutex
	delay       time.Duration
	limiter     *rate.Limiter
	lastRequest time.Time
	totalCalls  int
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

// New returns a queue that spaces calls by delay. A non-positive delay admits every call immediately.
func New(delay time.Duration) *CallQueue {
	q := &CallQueue{
		delay: delay,
		now:   time.Now,
		sleep: sleepContext,
	}
	q.limiter = newLimiter(delay)
	return q
}

// FromRate builds a queue allowing callsPerMinute upstream requests per minute.
func FromRate(callsPerMinute int) *CallQueue {
	if callsPerMinute <= 0 {
		return New(0)
	}
	return New(time.Minute / time.Duration(callsPerMinute))
}

func newLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// AddCall reserves the next slot.
func (q *CallQueue) AddCall() Call {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	ready := now
	if r := q.limiter.ReserveN(now, 1); r.OK() {
		ready = now.Add(r.DelayFrom(now))
	}
	q.lastRequest = ready
	q.totalCalls++
	return Call{ReadyTime: ready, now: q.now}
}

// Wait reserves a slot and blocks until it arrives or ctx is done.
// The returned duration is how long the caller was asked to wait.
// A canceled wait does not give the slot back.
func (q *CallQueue) Wait(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	call := q.AddCall()
	delay := call.Delay()
	if delay <= 0 {
		return 0, nil
	}
	if err := q.sleep(ctx, delay); err != nil {
		return delay, err
	}
	return delay, nil
}

// Reset forgets every reservation.
func (q *CallQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.limiter = newLimiter(q.delay)
	q.lastRequest = time.Time{}
	q.totalCalls = 0
}

// Stats is a point-in-time view of the queue.
type Stats struct {
	Delay       time.Duration `json:"-"`
	DelayMS     int64         `json:"delay_ms"`
	TotalCalls  int           `json:"total_calls"`
	LastRequest time.Time     `json:"last_request"`
	Backlog     time.Duration `json:"-"`
	BacklogMS   int64         `json:"backlog_ms"`
}

// Stats reports totals and how far ahead the last reservation is.
func (q *CallQueue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	var backlog time.Duration
	if !q.lastRequest.IsZero() {
		if d := q.lastRequest.Sub(q.now()); d > 0 {
			backlog = d
		}
	}
	return Stats{
		Delay:       q.delay,
		DelayMS:     q.delay.Milliseconds(),
		TotalCalls:  q.totalCalls,
		LastRequest: q.lastRequest,
		Backlog:     backlog,
		BacklogMS:   backlog.Milliseconds(),
	}
}

// TotalCalls returns how many slots have been reserved since creation or the last Reset.
func (q *CallQueue) TotalCalls() int {
	return q.Stats().TotalCalls
}

// Delay returns the spacing between slots.
func (q *CallQueue) Delay() time.Duration {
	return q.delay
}

func (q *CallQueue) String() string {
	s := q.Stats()
	last := "never"
	if !s.LastRequest.IsZero() {
		last = s.LastRequest.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%d calls (last call: %s) | %.2f second delay", s.TotalCalls, last, s.Delay.Seconds())
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

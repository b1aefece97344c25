package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about upstream calls, caches and the call queue.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*providerStats
	caches     map[string]*cacheStats
	queueWaits int
	lastWait   time.Duration
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		caches: make(map[string]*cacheStats),
		otel:   otel,
	}
}

// RecordProviderAttempt counts one upstream call for an operation ("games", "boxscore", ...).
func (r *Recorder) RecordProviderAttempt(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(operation)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(operation, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(operation string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(operation)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(operation, retryAfter)
	}
}

// RecordCacheLookup counts a hit or a miss for the named cache.
func (r *Recorder) RecordCacheLookup(cache string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.caches[cache]
	if !ok {
		stats = &cacheStats{}
		r.caches[cache] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(cache, hit)
	}
}

// RecordQueueWait tracks how long a caller slept waiting for its call-queue slot.
func (r *Recorder) RecordQueueWait(wait time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.queueWaits++
	r.lastWait = wait
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQueueWait(wait)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot returns a copy of the current stats for an operation.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ProviderCalls returns the total attempts recorded for an operation.
func (r *Recorder) ProviderCalls(operation string) int {
	return r.Snapshot(operation).Calls
}

// ProviderErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) ProviderErrors(operation string) int {
	return r.Snapshot(operation).Errors
}

// CacheHits returns hits and misses recorded for a cache.
func (r *Recorder) CacheHits(cache string) (hits, misses int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.caches[cache]; ok {
		return stats.hits, stats.misses
	}
	return 0, 0
}

// QueueWaits returns how many waits were recorded and the most recent one.
func (r *Recorder) QueueWaits() (int, time.Duration) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queueWaits, r.lastWait
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(operation string) *providerStats {
	stats, ok := r.stats[operation]
	if !ok {
		stats = &providerStats{}
		r.stats[operation] = stats
	}
	return stats
}

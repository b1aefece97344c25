// Package cache memoizes upstream results for a fixed time-to-live.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
	"github.com/preston-bernstein/nba-stats-proxy/internal/store"
)

// TTL caches values of type V under string keys. An entry is fresh while
// now-storedAt <= ttl; stale entries are treated as misses and overwritten on reload.
type TTL[V any] struct {
	name     string
	ttl      time.Duration
	store    store.Store
	group    singleflight.Group
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option customizes a TTL cache.
type Option func(*options)

type options struct {
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// WithRecorder reports hits and misses.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithLogger logs degraded backend reads and writes.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds a cache named name (used as key prefix and metric label).
func New[V any](name string, ttl time.Duration, backend store.Store, opts ...Option) *TTL[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if backend == nil {
		backend = store.NewMemoryStore()
	}
	return &TTL[V]{
		name:     name,
		ttl:      ttl,
		store:    backend,
		recorder: o.recorder,
		logger:   o.logger,
		now:      o.now,
	}
}

// Name returns the cache name.
func (c *TTL[V]) Name() string {
	return c.name
}

// TTL returns the freshness window.
func (c *TTL[V]) TTL() time.Duration {
	return c.ttl
}

// Get returns a fresh value for key. Backend and decode errors count as misses.
func (c *TTL[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	raw, storedAt, ok, err := c.store.Get(ctx, c.key(key))
	if err != nil {
		logging.Warn(c.logger, "cache read failed", logging.FieldCache, c.name, logging.FieldKey, key, "error", err)
		return zero, false
	}
	if !ok || !c.fresh(storedAt) {
		return zero, false
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		logging.Warn(c.logger, "cache decode failed", logging.FieldCache, c.name, logging.FieldKey, key, "error", err)
		return zero, false
	}
	return v, true
}

// Set stores value under key, replacing any previous entry. A cache with a
// non-positive ttl keeps nothing.
func (c *TTL[V]) Set(ctx context.Context, key string, value V) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key(key), raw, c.ttl)
}

// GetOrLoad returns the cached value or calls load once per key across concurrent callers.
// Errors from load are returned and never stored. The shared load ignores any single
// caller's cancellation; a caller whose ctx ends stops waiting and gets ctx.Err().
func (c *TTL[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(ctx, key); ok {
		c.recorder.RecordCacheLookup(c.name, true)
		return v, nil
	}
	c.recorder.RecordCacheLookup(c.name, false)

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.Get(loadCtx, key); ok {
			return v, nil
		}
		v, err := load(loadCtx)
		if err != nil {
			return v, err
		}
		if err := c.Set(loadCtx, key, v); err != nil {
			logging.Warn(c.logger, "cache write failed", logging.FieldCache, c.name, logging.FieldKey, key, "error", err)
		}
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

func (c *TTL[V]) fresh(storedAt time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(storedAt) <= c.ttl
}

func (c *TTL[V]) key(k string) string {
	return c.name + ":" + k
}

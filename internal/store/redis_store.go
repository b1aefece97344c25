package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const stampSize = 8

// RedisConfig selects the redis instance shared between proxy replicas.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore keeps entries in redis. Values are prefixed with the unix-nano store time
// so freshness can be judged the same way as with MemoryStore.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore connects lazily; the first command dials.
func NewRedisStore(cfg RedisConfig) *RedisStore {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "nba-stats-proxy:"
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: prefix,
		now:    time.Now,
	}
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, time.Time, bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	value, storedAt, err := unstamp(raw)
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, storedAt, true, nil
}

// Set writes the entry with a redis-side expiry of ttl (none when ttl <= 0).
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.prefix+key, stamp(s.now(), value), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func stamp(at time.Time, value []byte) []byte {
	out := make([]byte, stampSize+len(value))
	binary.BigEndian.PutUint64(out, uint64(at.UnixNano()))
	copy(out[stampSize:], value)
	return out
}

func unstamp(raw []byte) ([]byte, time.Time, error) {
	if len(raw) < stampSize {
		return nil, time.Time{}, errors.New("corrupt cache entry")
	}
	nanos := int64(binary.BigEndian.Uint64(raw[:stampSize]))
	return raw[stampSize:], time.Unix(0, nanos), nil
}

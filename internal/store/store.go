package store

import (
	"context"
	"time"
)

// Store keeps encoded cache entries. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value and when it was stored. ok is false on a miss.
	Get(ctx context.Context, key string) (value []byte, storedAt time.Time, ok bool, err error)
	// Set overwrites the entry; ttl is a hint for backends that expire on their own.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

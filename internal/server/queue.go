package server

import (
	"github.com/preston-bernstein/nba-stats-proxy/internal/callqueue"
	"github.com/preston-bernstein/nba-stats-proxy/internal/config"
)

// newCallQueue paces upstream calls. CALL_DELAY wins over CALLS_PER_MINUTE.
func newCallQueue(cfg config.Config) *callqueue.CallQueue {
	if cfg.CallDelay > 0 {
		return callqueue.New(cfg.CallDelay)
	}
	return callqueue.FromRate(cfg.CallsPerMinute)
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-proxy/internal/callqueue"
	"github.com/preston-bernstein/nba-stats-proxy/internal/config"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

// providerFactory assembles the upstream providers behind the shared call queue.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	queue   *callqueue.CallQueue
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, queue *callqueue.CallQueue) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, queue: queue}
}

func (f providerFactory) build(cfg config.Config) (providers.StatsProvider, providers.NewsProvider) {
	stats, news := selectProviders(cfg, f.logger)
	return f.wrap(cfg.Provider, stats, news)
}

// wrap puts stats and news behind the one queue so both count against the same upstream budget.
func (f providerFactory) wrap(name string, stats providers.StatsProvider, news providers.NewsProvider) (providers.StatsProvider, providers.NewsProvider) {
	statsName := normalizeProviderName(name, stats)
	return providers.NewQueuedProvider(statsName, stats, f.queue, f.metrics, f.logger),
		providers.NewQueuedNewsProvider("news", news, f.queue, f.metrics, f.logger)
}

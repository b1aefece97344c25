package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-proxy/internal/config"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers/nbastats"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers/newsfeed"
)

// Provider names accepted by PROVIDER.
const (
	providerNBAStats = "nbastats"
	providerFixture  = "fixture"
)

func selectProviders(cfg config.Config, logger *slog.Logger) (providers.StatsProvider, providers.NewsProvider) {
	switch cfg.Provider {
	case providerNBAStats, "":
		client := nbastats.NewClient(nbastats.Config{
			BaseURL:         cfg.NBAStats.BaseURL,
			Timeout:         cfg.NBAStats.Timeout,
			BreakerFailures: cfg.NBAStats.BreakerFailures,
			BreakerCooldown: cfg.NBAStats.BreakerCooldown,
			Logger:          logger,
		})
		scraper := newsfeed.New(newsfeed.Config{Timeout: cfg.News.Timeout, Logger: logger})
		return client, scraper
	case providerFixture:
		fx := fixture.New()
		return fx, fx
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		fx := fixture.New()
		return fx, fx
	}
}

package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-stats-proxy/internal/app/boxscores"
	"github.com/preston-bernstein/nba-stats-proxy/internal/app/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/app/news"
	"github.com/preston-bernstein/nba-stats-proxy/internal/app/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/app/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/cache"
	"github.com/preston-bernstein/nba-stats-proxy/internal/callqueue"
	"github.com/preston-bernstein/nba-stats-proxy/internal/config"
	domainbox "github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	domainnews "github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	domainplayers "github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
	"github.com/preston-bernstein/nba-stats-proxy/internal/store"
)

// Services is the application layer shared by the HTTP server and the statsctl CLI.
type Services struct {
	Games     *games.Service
	BoxScores *boxscores.Service
	Standings *standings.Service
	Players   *players.Service
	News      *news.Service
	Queue     *callqueue.CallQueue
	Store     store.Store
}

// BuildServices wires the cache backend, call queue, providers and caches from cfg.
func BuildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) Services {
	queue := newCallQueue(cfg)
	stats, newsProvider := newProviderFactory(logger, recorder, queue).build(cfg)
	return assembleServices(cfg, logger, recorder, queue, buildStore(cfg, logger), stats, newsProvider)
}

func assembleServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, queue *callqueue.CallQueue, backend store.Store, stats providers.StatsProvider, newsProvider providers.NewsProvider) Services {
	opts := []cache.Option{cache.WithRecorder(recorder), cache.WithLogger(logger)}
	ttl := cfg.Cache.TTL
	return Services{
		Games:     games.NewService(stats, cache.New[[]domaingames.Game]("games", ttl.Games, backend, opts...)),
		BoxScores: boxscores.NewService(stats, cache.New[domainbox.BoxScore]("boxscores", ttl.BoxScores, backend, opts...)),
		Standings: standings.NewService(stats, cache.New[domainstandings.Standings]("standings", ttl.Standings, backend, opts...)),
		Players: players.NewService(stats,
			cache.New[[]domainplayers.Player]("player_index", ttl.PlayerIndex, backend, opts...),
			cache.New[domainplayers.PlayerStatsOut]("players", ttl.Players, backend, opts...),
		),
		News:  news.NewService(newsProvider, cache.New[[]domainnews.ArticleInfo]("news", ttl.News, backend, opts...)),
		Queue: queue,
		Store: backend,
	}
}

// Handlers exposes the services in the shape the HTTP layer expects.
func (s Services) Handlers() handlers.Services {
	return handlers.Services{
		Games:     s.Games,
		BoxScores: s.BoxScores,
		Standings: s.Standings,
		Players:   s.Players,
		News:      s.News,
	}
}

// Close releases the cache backend.
func (s Services) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}

// buildStore returns the configured cache backend. An unreachable redis falls back to memory.
func buildStore(cfg config.Config, logger *slog.Logger) store.Store {
	if !strings.EqualFold(cfg.Cache.Backend, config.CacheBackendRedis) {
		return store.NewMemoryStore()
	}
	rs := store.NewRedisStore(store.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rs.Ping(ctx); err != nil {
		logging.Warn(logger, "redis unavailable, falling back to in-memory cache",
			slog.String("addr", cfg.Cache.Redis.Addr),
			slog.Any("err", err),
		)
		_ = rs.Close()
		return store.NewMemoryStore()
	}
	logging.Info(logger, "using redis cache", slog.String("addr", cfg.Cache.Redis.Addr))
	return rs
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig selects the cache backend and per-resource freshness windows.
type CacheConfig struct {
	Backend string
	Redis   RedisConfig
	TTL     CacheTTLs
}

// RedisConfig is only consulted when Backend is redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheTTLs are the per-resource freshness windows.
type CacheTTLs struct {
	Games       time.Duration
	BoxScores   time.Duration
	Standings   time.Duration
	Players     time.Duration
	PlayerIndex time.Duration
	News        time.Duration
}

func loadCache(v *viper.Viper) CacheConfig {
	return CacheConfig{
		Backend: envOrDefault(v, envCacheBackend, defaultCacheBackend),
		Redis: RedisConfig{
			Addr:     envOrDefault(v, envRedisAddr, defaultRedisAddr),
			Password: envOrDefault(v, envRedisPassword, ""),
			DB:       intEnvOrDefault(v, envRedisDB, 0),
		},
		TTL: CacheTTLs{
			Games:       ttlEnvOrDefault(v, envTTLGames, defaultTTLGames),
			BoxScores:   ttlEnvOrDefault(v, envTTLBoxScores, defaultTTLBoxScores),
			Standings:   ttlEnvOrDefault(v, envTTLStandings, defaultTTLStandings),
			Players:     ttlEnvOrDefault(v, envTTLPlayers, defaultTTLPlayers),
			PlayerIndex: ttlEnvOrDefault(v, envTTLPlayerIndex, defaultTTLPlayerIndex),
			News:        ttlEnvOrDefault(v, envTTLNews, defaultTTLNews),
		},
	}
}

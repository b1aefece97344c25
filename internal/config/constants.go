package config

import "time"

const (
	envEnvFile         = "ENV_FILE"
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envCallsPerMinute  = "CALLS_PER_MINUTE"
	envCallDelay       = "CALL_DELAY"
	envAllowedOrigins  = "ALLOWED_ORIGINS"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envCacheBackend    = "CACHE_BACKEND"
	envRedisAddr       = "REDIS_ADDR"
	envRedisPassword   = "REDIS_PASSWORD"
	envRedisDB         = "REDIS_DB"
	envTTLGames        = "CACHE_TTL_GAMES"
	envTTLBoxScores    = "CACHE_TTL_BOXSCORES"
	envTTLStandings    = "CACHE_TTL_STANDINGS"
	envTTLPlayers      = "CACHE_TTL_PLAYERS"
	envTTLPlayerIndex  = "CACHE_TTL_PLAYER_INDEX"
	envTTLNews         = "CACHE_TTL_NEWS"
	envStatsBaseURL    = "NBA_STATS_BASE_URL"
	envStatsTimeout    = "NBA_STATS_TIMEOUT"
	envBreakerFailures = "BREAKER_FAILURES"
	envBreakerCooldown = "BREAKER_COOLDOWN"
	envNewsTimeout     = "NEWS_TIMEOUT"
	envPollEnabled     = "POLL_ENABLED"
	envPollSchedule    = "POLL_SCHEDULE"
	envCurrentSeason   = "CURRENT_SEASON"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultEnvFile  = ".env"
	defaultPort     = "8000"
	defaultProvider = "nbastats"
	// stats.nba.com starts refusing connections well before 20 req/min from one address.
	defaultCallsPerMinute  = 10
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultCacheBackend    = "memory"
	defaultRedisAddr       = "localhost:6379"
	defaultTTLGames        = 30 * time.Second
	defaultTTLBoxScores    = 30 * time.Second
	defaultTTLStandings    = 60 * time.Second
	defaultTTLPlayers      = 5 * time.Minute
	defaultTTLPlayerIndex  = 24 * time.Hour
	defaultTTLNews         = 5 * time.Minute
	defaultStatsBaseURL    = "https://stats.nba.com/stats"
	defaultStatsTimeout    = 30 * time.Second
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 60 * time.Second
	defaultNewsTimeout     = 15 * time.Second
	defaultPollEnabled     = true
	defaultPollSchedule    = "@every 5m"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nba-stats-proxy"
)

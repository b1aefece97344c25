package config

import "github.com/spf13/viper"

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	Provider       string
	CallsPerMinute int
	CallDelay      Duration
	AllowedOrigins []string
	Log            LogConfig
	Cache          CacheConfig
	NBAStats       NBAStatsConfig
	News           NewsConfig
	Poller         PollerConfig
	Metrics        MetricsConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables (and an optional .env file) with sensible defaults.
func Load() Config {
	return load(newSource())
}

func load(v *viper.Viper) Config {
	return Config{
		Port:           envOrDefault(v, envPort, defaultPort),
		Provider:       envOrDefault(v, envProvider, defaultProvider),
		CallsPerMinute: intEnvOrDefault(v, envCallsPerMinute, defaultCallsPerMinute),
		CallDelay:      durationEnvOrDefault(v, envCallDelay, 0),
		AllowedOrigins: listEnvOrDefault(v, envAllowedOrigins, nil),
		Log: LogConfig{
			Level:  envOrDefault(v, envLogLevel, defaultLogLevel),
			Format: envOrDefault(v, envLogFormat, defaultLogFormat),
		},
		Cache:    loadCache(v),
		NBAStats: loadNBAStats(v),
		News:     loadNews(v),
		Poller:   loadPoller(v),
		Metrics:  loadMetrics(v),
	}
}

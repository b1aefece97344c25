package config

import (
	"time"

	"github.com/spf13/viper"
)

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL         string
	Timeout         time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

// NewsConfig controls the headline scraper.
type NewsConfig struct {
	Timeout time.Duration
}

func loadNBAStats(v *viper.Viper) NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:         envOrDefault(v, envStatsBaseURL, defaultStatsBaseURL),
		Timeout:         durationEnvOrDefault(v, envStatsTimeout, defaultStatsTimeout),
		BreakerFailures: intEnvOrDefault(v, envBreakerFailures, defaultBreakerFailures),
		BreakerCooldown: durationEnvOrDefault(v, envBreakerCooldown, defaultBreakerCooldown),
	}
}

func loadNews(v *viper.Viper) NewsConfig {
	return NewsConfig{
		Timeout: durationEnvOrDefault(v, envNewsTimeout, defaultNewsTimeout),
	}
}

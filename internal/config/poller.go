package config

import "github.com/spf13/viper"

// PollerConfig controls background cache warming.
type PollerConfig struct {
	Enabled  bool
	Schedule string
	// Season to warm; empty means the season in progress.
	CurrentSeason string
}

func loadPoller(v *viper.Viper) PollerConfig {
	return PollerConfig{
		Enabled:       boolEnvOrDefault(v, envPollEnabled, defaultPollEnabled),
		Schedule:      envOrDefault(v, envPollSchedule, defaultPollSchedule),
		CurrentSeason: envOrDefault(v, envCurrentSeason, ""),
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(envEnvFile, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.CallsPerMinute != defaultCallsPerMinute || cfg.CallDelay != 0 {
		t.Fatalf("expected default pacing, got %d/min delay=%s", cfg.CallsPerMinute, cfg.CallDelay)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Fatalf("expected memory cache backend, got %s", cfg.Cache.Backend)
	}
	want := CacheTTLs{
		Games:       30 * time.Second,
		BoxScores:   30 * time.Second,
		Standings:   60 * time.Second,
		Players:     5 * time.Minute,
		PlayerIndex: 24 * time.Hour,
		News:        5 * time.Minute,
	}
	if cfg.Cache.TTL != want {
		t.Fatalf("unexpected default ttls %+v", cfg.Cache.TTL)
	}
	if cfg.NBAStats.BaseURL != defaultStatsBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultStatsBaseURL, cfg.NBAStats.BaseURL)
	}
	if !cfg.Poller.Enabled || cfg.Poller.Schedule != defaultPollSchedule {
		t.Fatalf("unexpected poller defaults %+v", cfg.Poller)
	}
	if cfg.AllowedOrigins != nil {
		t.Fatalf("expected no allowed origins by default, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envCallsPerMinute, "30")
	t.Setenv(envCacheBackend, "redis")
	t.Setenv(envRedisAddr, "cache:6379")
	t.Setenv(envRedisDB, "2")
	t.Setenv(envTTLNews, "1m")
	t.Setenv(envStatsBaseURL, "http://example.com/stats")
	t.Setenv(envBreakerFailures, "9")
	t.Setenv(envAllowedOrigins, "http://localhost:3000, https://app.example.com ,")
	t.Setenv(envPollEnabled, "false")
	t.Setenv(envCurrentSeason, "2022-23")

	cfg := Load()

	if cfg.Port != "5000" || cfg.Provider != "fixture" {
		t.Fatalf("unexpected port/provider %s/%s", cfg.Port, cfg.Provider)
	}
	if cfg.CallsPerMinute != 30 {
		t.Fatalf("expected 30 calls per minute, got %d", cfg.CallsPerMinute)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.Redis.Addr != "cache:6379" || cfg.Cache.Redis.DB != 2 {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.News != time.Minute {
		t.Fatalf("expected news ttl override, got %s", cfg.Cache.TTL.News)
	}
	if cfg.NBAStats.BaseURL != "http://example.com/stats" || cfg.NBAStats.BreakerFailures != 9 {
		t.Fatalf("unexpected nbastats config %+v", cfg.NBAStats)
	}
	wantOrigins := []string{"http://localhost:3000", "https://app.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, wantOrigins) {
		t.Fatalf("expected origins %v, got %v", wantOrigins, cfg.AllowedOrigins)
	}
	if cfg.Poller.Enabled || cfg.Poller.CurrentSeason != "2022-23" {
		t.Fatalf("unexpected poller config %+v", cfg.Poller)
	}
}

func TestLoadCallDelay(t *testing.T) {
	isolate(t)
	t.Setenv(envCallDelay, "250ms")

	if got := Load().CallDelay; got != 250*time.Millisecond {
		t.Fatalf("expected 250ms delay, got %s", got)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.env")
	if err := os.WriteFile(path, []byte("PORT=7000\nCACHE_TTL_GAMES=10s\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envEnvFile, path)

	cfg := Load()
	if cfg.Port != "7000" {
		t.Fatalf("expected port from env file, got %s", cfg.Port)
	}
	if cfg.Cache.TTL.Games != 10*time.Second {
		t.Fatalf("expected games ttl from env file, got %s", cfg.Cache.TTL.Games)
	}
}

func TestProcessEnvBeatsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.env")
	if err := os.WriteFile(path, []byte("PORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envEnvFile, path)
	t.Setenv(envPort, "7100")

	if got := Load().Port; got != "7100" {
		t.Fatalf("expected process env to win, got %s", got)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv(envTTLGames, "not-a-duration")

	cfg := Load()

	if cfg.Cache.TTL.Games != defaultTTLGames {
		t.Fatalf("expected default games ttl on invalid value, got %s", cfg.Cache.TTL.Games)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv(envTTLGames, "-5s")
	t.Setenv(envStatsTimeout, "0s")

	cfg := Load()

	if cfg.Cache.TTL.Games != defaultTTLGames {
		t.Fatalf("expected default games ttl on negative value, got %s", cfg.Cache.TTL.Games)
	}
	if cfg.NBAStats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout on zero value, got %s", cfg.NBAStats.Timeout)
	}
}

func TestLoadZeroCacheTTLIsKept(t *testing.T) {
	isolate(t)
	t.Setenv(envTTLGames, "0s")
	t.Setenv(envTTLNews, "0")

	cfg := Load()

	if cfg.Cache.TTL.Games != 0 || cfg.Cache.TTL.News != 0 {
		t.Fatalf("expected zero ttls to disable caching, got games=%s news=%s", cfg.Cache.TTL.Games, cfg.Cache.TTL.News)
	}
}

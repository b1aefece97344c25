package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	domainbox "github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	domainnews "github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	domainplayers "github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-proxy/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CALL_DELAY", "1ms")
	t.Setenv("CACHE_BACKEND", "memory")

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--provider", "fixture", "--compact"}, args...))
	err := root.Execute()
	return out.String(), err
}

func decode(t *testing.T, raw string, dest any) {
	t.Helper()
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		t.Fatalf("failed to decode output %q: %v", raw, err)
	}
}

func TestRootRegistersEveryCommand(t *testing.T) {
	root := newRootCommand()
	want := []string{"standings", "games", "boxscore", "search", "player", "compare", "news", "serve"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("expected %s command, err=%v", name, err)
		}
	}
}

func TestStandingsCommand(t *testing.T) {
	out, err := run(t, "standings", "2023-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got domainstandings.Standings
	decode(t, out, &got)
	if got.Season != "2023-24" || len(got.East) != 2 || len(got.West) != 2 {
		t.Fatalf("unexpected standings %+v", got)
	}

	if _, err := run(t, "standings", "2023"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid season, got %v", err)
	}
}

func TestStandingsDefaultsToCurrentSeason(t *testing.T) {
	original := timeNow
	timeNow = testutil.NowAt(testutil.MustParseRFC3339("2024-11-01T00:00:00Z"))
	defer func() { timeNow = original }()

	out, err := run(t, "standings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got domainstandings.Standings
	decode(t, out, &got)
	if got.Season != "2024-25" {
		t.Fatalf("expected current season, got %q", got.Season)
	}
}

func TestGamesCommand(t *testing.T) {
	out, err := run(t, "games", "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []domaingames.Game
	decode(t, out, &got)
	if len(got) != 2 {
		t.Fatalf("expected fixture games, got %+v", got)
	}

	if _, err := run(t, "games", "tomorrow"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid day, got %v", err)
	}
}

func TestGamesDefaultsToLeagueDay(t *testing.T) {
	original := timeNow
	timeNow = testutil.NowAt(testutil.MustParseRFC3339("2024-01-16T02:30:00Z"))
	defer func() { timeNow = original }()

	out, err := run(t, "games")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []domaingames.Game
	decode(t, out, &got)
	if len(got) == 0 || !strings.HasPrefix(got[0].StartTime, "2024-01-15") {
		t.Fatalf("expected games for the evening's league day, got %+v", got)
	}
}

func TestBoxScoreCommand(t *testing.T) {
	out, err := run(t, "boxscore", fixture.FinalGameID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got domainbox.BoxScore
	decode(t, out, &got)
	if got.GameID != fixture.FinalGameID || !got.ScoreExists {
		t.Fatalf("unexpected box score %+v", got)
	}

	if _, err := run(t, "boxscore", "0020000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchAndPlayerCommands(t *testing.T) {
	out, err := run(t, "search", "lebron", "james")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var results []domainplayers.SearchResult
	decode(t, out, &results)
	if len(results) != 1 || results[0].PlayerID != 2544 {
		t.Fatalf("unexpected search results %+v", results)
	}

	out, err = run(t, "player", "2544")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var stats domainplayers.PlayerStatsOut
	decode(t, out, &stats)
	if stats.PlayerName != "LeBron James" || len(stats.Stats) != 3 {
		t.Fatalf("unexpected player stats %+v", stats)
	}

	if _, err := run(t, "player", "abc"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid id, got %v", err)
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "2544", "201939", "--mode", "season", "--season", "2023-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got domainplayers.Comparison
	decode(t, out, &got)
	if got.ModeType != domainplayers.ModeSeason || got.Player2.PlayerName != "Stephen Curry" {
		t.Fatalf("unexpected comparison %+v", got)
	}
	if len(got.Leaders) == 0 {
		t.Fatalf("expected leaders")
	}

	if _, err := run(t, "compare", "2544"); err == nil {
		t.Fatalf("expected argument count error")
	}
}

func TestNewsCommand(t *testing.T) {
	out, err := run(t, "news")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []domainnews.ArticleInfo
	decode(t, out, &got)
	if len(got) != 3 {
		t.Fatalf("expected fixture headlines, got %+v", got)
	}
}

func TestPrintIndentsByDefault(t *testing.T) {
	var buf bytes.Buffer
	opts := &globalOptions{}
	if err := opts.print(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"a\": 1") {
		t.Fatalf("expected indented output, got %q", buf.String())
	}

	if err := opts.print(&buf, make(chan int)); err == nil {
		t.Fatalf("expected encode error")
	}
}

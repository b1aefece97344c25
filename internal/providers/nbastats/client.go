// Package nbastats talks to the stats.nba.com JSON API.
package nbastats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL         string
	HTTPClient      *http.Client
	Timeout         time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
	Logger          *slog.Logger
}

// Client fetches stats resources and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		breaker:    newBreaker(cfg.BreakerFailures, cfg.BreakerCooldown, cfg.Logger),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchGames returns the scoreboard for day; a day without games yields an empty slice.
func (c *Client) FetchGames(ctx context.Context, day time.Time) ([]domaingames.Game, error) {
	params := url.Values{}
	params.Set("GameDate", day.Format(scoreboardDate))
	params.Set("LeagueID", leagueID)

	var payload scoreboardResponse
	if err := c.get(ctx, endpointScoreboard, params, &payload); err != nil {
		return nil, err
	}

	games := make([]domaingames.Game, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchBoxScore returns the traditional box score, or the game summary when no stats exist yet.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (boxscores.BoxScore, error) {
	params := gameParams(gameID)

	var traditional boxScoreResponse
	err := c.get(ctx, endpointBoxScore, params, &traditional)
	if err == nil && traditional.playerCount() > 0 {
		return mapBoxScore(gameID, traditional), nil
	}
	if fatal(ctx, err) {
		return boxscores.BoxScore{}, err
	}

	var summary boxScoreSummaryResponse
	if err := c.get(ctx, endpointBoxScoreSummary, gameParams(gameID), &summary); err != nil {
		if fatal(ctx, err) {
			return boxscores.BoxScore{}, err
		}
		return boxscores.BoxScore{}, fmt.Errorf("box score %s: %w", gameID, domain.ErrNotFound)
	}
	if summary.BoxScoreSummary.HomeTeam.TeamID == 0 && summary.BoxScoreSummary.AwayTeam.TeamID == 0 {
		return boxscores.BoxScore{}, fmt.Errorf("box score %s: %w", gameID, domain.ErrNotFound)
	}
	return mapSummary(gameID, summary), nil
}

// FetchStandings returns regular-season standings rows for season.
func (c *Client) FetchStandings(ctx context.Context, season string) ([]standings.Entry, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", season)
	params.Set("SeasonType", seasonTypeRegular)

	var payload resultSetsResponse
	if err := c.get(ctx, endpointStandings, params, &payload); err != nil {
		return nil, err
	}
	rs, ok := payload.find(resultStandings)
	if !ok && len(payload.ResultSets) > 0 {
		rs, ok = payload.ResultSets[0], true
	}
	if !ok {
		return nil, fmt.Errorf("standings %s: %w", season, domain.ErrNotFound)
	}
	return mapStandings(rs), nil
}

// FetchPlayerIndex returns every player the league has on record.
func (c *Client) FetchPlayerIndex(ctx context.Context) ([]players.Player, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", standings.SeasonFor(c.now()))
	params.Set("IsOnlyCurrentSeason", "0")

	var payload resultSetsResponse
	if err := c.get(ctx, endpointAllPlayers, params, &payload); err != nil {
		return nil, err
	}
	rs, ok := payload.find(resultCommonAllPlayer)
	if !ok {
		return nil, fmt.Errorf("player index: %w", domain.ErrNotFound)
	}
	return mapPlayerIndex(rs), nil
}

// FetchCareerStats returns regular-season totals per season plus career totals.
func (c *Client) FetchCareerStats(ctx context.Context, playerID int) (players.CareerStats, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", perModeTotals)
	params.Set("LeagueID", leagueID)

	var payload resultSetsResponse
	if err := c.get(ctx, endpointCareerStats, params, &payload); err != nil {
		return players.CareerStats{}, err
	}
	career := mapCareer(playerID, payload)
	if len(career.Seasons) == 0 && career.Career == nil {
		return players.CareerStats{}, fmt.Errorf("player %d: %w", playerID, domain.ErrNotFound)
	}
	return career, nil
}

// get performs one GET through the circuit breaker and decodes the JSON body into dest.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		err := c.do(ctx, path, params, dest)
		if err != nil && ctx.Err() != nil {
			return nil, callerGone{err: err}
		}
		return nil, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s %s: %w: %v", providerName, path, providers.ErrProviderUnavailable, err)
	}
	var gone callerGone
	if errors.As(err, &gone) {
		return gone.err
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, params url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = params.Encode()
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", providerName, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    providerName + " rate limited",
		}
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%s %s: %w", providerName, path, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s %s: decode: %w", providerName, path, err)
	}
	return nil
}

func gameParams(gameID string) url.Values {
	params := url.Values{}
	params.Set("GameID", gameID)
	params.Set("LeagueID", leagueID)
	params.Set("StartPeriod", "0")
	params.Set("EndPeriod", "0")
	params.Set("StartRange", "0")
	params.Set("EndRange", "0")
	params.Set("RangeType", "0")
	return params
}

// fatal reports errors that make a fallback request pointless.
func fatal(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil || errors.Is(err, providers.ErrProviderUnavailable)
}

func parseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

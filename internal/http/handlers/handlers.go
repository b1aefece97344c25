package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-proxy/internal/callqueue"
	domainbox "github.com/preston-bernstein/nba-stats-proxy/internal/domain/boxscores"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	domainnews "github.com/preston-bernstein/nba-stats-proxy/internal/domain/news"
	domainplayers "github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/poller"
)

type nowFunc func() time.Time

// GamesService lists the games of one day.
type GamesService interface {
	GamesOn(ctx context.Context, day time.Time) ([]domaingames.Game, error)
}

// BoxScoreService returns one game's box score.
type BoxScoreService interface {
	BoxScore(ctx context.Context, gameID string) (domainbox.BoxScore, error)
}

// StandingsService returns a season's standings.
type StandingsService interface {
	Standings(ctx context.Context, season string) (domainstandings.Standings, error)
}

// PlayersService answers search, stats and comparison requests.
type PlayersService interface {
	Search(ctx context.Context, name string) ([]domainplayers.SearchResult, error)
	PlayerStats(ctx context.Context, playerID int) (domainplayers.PlayerStatsOut, error)
	Compare(ctx context.Context, p1, p2 int, mode, seasonName string) (domainplayers.Comparison, error)
}

// NewsService returns the merged headlines.
type NewsService interface {
	News(ctx context.Context) ([]domainnews.ArticleInfo, error)
}

// Services groups the application services the routes delegate to.
type Services struct {
	Games     GamesService
	BoxScores BoxScoreService
	Standings StandingsService
	Players   PlayersService
	News      NewsService
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc        Services
	logger     *slog.Logger
	now        nowFunc
	statusFn   func() poller.Status
	queueStats func() callqueue.Stats
	mux        *nethttp.ServeMux
}

// NewHandler constructs a Handler with its routes registered.
// statusFn and queueStats may be nil when there is no poller or queue to report on.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status, queueStats func() callqueue.Stats) *Handler {
	h := &Handler{
		svc:        svc,
		logger:     logger,
		now:        time.Now,
		statusFn:   statusFn,
		queueStats: queueStats,
	}
	h.mux = h.routes()
	return h
}

// ServeHTTP dispatches to the registered routes.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) routes() *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/queue", h.Queue)
	mux.HandleFunc("/standings/{season_id}", h.Standings)
	mux.HandleFunc("/games/{day...}", h.Games)
	mux.HandleFunc("/boxscore/{game_id}", h.BoxScore)
	mux.HandleFunc("/search-player/{name}", h.SearchPlayer)
	mux.HandleFunc("/player-stats/{player_id}", h.PlayerStats)
	mux.HandleFunc("/news/", h.News)
	mux.HandleFunc("/compare/", h.Compare)
	mux.HandleFunc("/", h.NotFound)
	return mux
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers paths no route claims.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// Standings serves /standings/{season_id}.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	out, err := h.svc.Standings.Standings(r.Context(), r.PathValue("season_id"))
	if err != nil {
		h.writeServiceError(w, r, "standings", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// Games serves /games/{day}; the day may contain slashes (MM/DD/YYYY).
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	day, err := domaingames.ParseDay(strings.TrimSuffix(r.PathValue("day"), "/"))
	if err != nil {
		h.writeServiceError(w, r, "games", err)
		return
	}
	out, err := h.svc.Games.GamesOn(r.Context(), day)
	if err != nil {
		h.writeServiceError(w, r, "games", err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served games",
		slog.String(logging.FieldDate, day.Format(domaingames.DayKey)),
		slog.Int(logging.FieldCount, len(out)),
	)
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// BoxScore serves /boxscore/{game_id}.
func (h *Handler) BoxScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	out, err := h.svc.BoxScores.BoxScore(r.Context(), r.PathValue("game_id"))
	if err != nil {
		h.writeServiceError(w, r, "boxscore", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// News serves /news/.
func (h *Handler) News(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if r.URL.Path != "/news/" {
		h.NotFound(w, r)
		return
	}
	out, err := h.svc.News.News(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "news", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

package handlers

import (
	nethttp "net/http"

	domainplayers "github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
)

// SearchPlayer serves /search-player/{name}.
func (h *Handler) SearchPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	out, err := h.svc.Players.Search(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeServiceError(w, r, "search_player", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// PlayerStats serves /player-stats/{player_id}.
func (h *Handler) PlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, err := domainplayers.ParseID(r.PathValue("player_id"))
	if err != nil {
		h.writeServiceError(w, r, "player_stats", err)
		return
	}
	out, err := h.svc.Players.PlayerStats(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "player_stats", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// Compare serves /compare/?p1_id=&p2_id=&mode_type=&season_name=.
func (h *Handler) Compare(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if r.URL.Path != "/compare/" {
		h.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	p1, err := domainplayers.ParseID(q.Get("p1_id"))
	if err != nil {
		h.writeServiceError(w, r, "compare", err)
		return
	}
	p2, err := domainplayers.ParseID(q.Get("p2_id"))
	if err != nil {
		h.writeServiceError(w, r, "compare", err)
		return
	}
	mode := q.Get("mode_type")
	if mode == "" {
		mode = domainplayers.ModeCareer
	}
	out, err := h.svc.Players.Compare(r.Context(), p1, p2, mode, q.Get("season_name"))
	if err != nil {
		h.writeServiceError(w, r, "compare", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

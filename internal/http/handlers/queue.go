package handlers

import nethttp "net/http"

// Queue reports the outbound call queue: spacing, reservations so far and current backlog.
func (h *Handler) Queue(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.queueStats == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "call queue not configured", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.queueStats(), h.logger)
}

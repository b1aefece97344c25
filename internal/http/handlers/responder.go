package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-proxy/internal/domain"
	"github.com/preston-bernstein/nba-stats-proxy/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-proxy/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps malformed input to 400 and every other failure to 404.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, domain.ErrNotFound):
		logging.Info(logger, "resource not found", slog.String(logging.FieldOperation, op), slog.Any("err", err))
		writeError(w, r, http.StatusNotFound, "not found", logger)
	case errors.Is(err, context.Canceled):
		logging.Info(logger, "request canceled", slog.String(logging.FieldOperation, op))
		writeError(w, r, http.StatusNotFound, "request canceled", logger)
	default:
		logging.Warn(logger, "upstream request failed", slog.String(logging.FieldOperation, op), slog.Any("err", err))
		writeError(w, r, http.StatusNotFound, "not found", logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

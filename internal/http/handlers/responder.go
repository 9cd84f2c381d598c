package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nha-sim-service/internal/app/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/betting"
	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/http/middleware"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/montecarlo"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
	"github.com/preston-bernstein/nha-sim-service/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a domain error to its status. Unexpected errors are logged and
// reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, status, "internal error", logger)
		return
	}
	writeError(w, r, status, err.Error(), logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, seasons.ErrPlayoffsComplete),
		errors.Is(err, seasons.ErrPlayoffsPending):
		return http.StatusConflict
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, betting.ErrInvalidStake),
		errors.Is(err, montecarlo.ErrInvalidRuns):
		return http.StatusBadRequest
	case errors.Is(err, betting.ErrTeamNotInField),
		errors.Is(err, sim.ErrInvalidSeedCount),
		errors.Is(err, sim.ErrDuplicateSeed),
		errors.Is(err, sim.ErrInvalidBestOf),
		errors.Is(err, league.ErrInvalidLeague):
		return http.StatusUnprocessableEntity
	}
	if _, ok := providers.AsLoadError(err); ok {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// NotFound writes the JSON 404 used for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	writeError(w, r, http.StatusNotFound, "not found", logger)
}

// MethodNotAllowed writes the JSON 405 used for known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
}

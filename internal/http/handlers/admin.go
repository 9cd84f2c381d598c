package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/preston-bernstein/nha-sim-service/internal/app/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/http/requestutil"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
)

// AdminHandler exposes admin-only endpoints for inspecting live sessions.
type AdminHandler struct {
	seasons *seasons.Service
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(svc *seasons.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		seasons: svc,
		token:   token,
		logger:  logger,
	}
}

type sessionSummary struct {
	ID        string `json:"id"`
	Seed      uint64 `json:"seed"`
	CreatedAt string `json:"createdAt"`
	BetTeam   string `json:"betTeam,omitempty"`
	Champion  string `json:"champion,omitempty"`
}

// Sessions lists every in-memory session, oldest first.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	sessions := h.seasons.List(r.Context())
	out := make([]sessionSummary, 0, len(sessions))
	for _, s := range sessions {
		sum := sessionSummary{
			ID:        s.ID,
			Seed:      s.Seed,
			CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		}
		if s.Bet != nil {
			sum.BetTeam = s.Bet.Team
		}
		if s.Bracket != nil {
			sum.Champion = s.Bracket.Champion
		}
		out = append(out, sum)
	}

	logger := loggerFromContext(r, h.logger)
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(out),
		"sessions": out,
	}, logger)
	logging.Info(logger, "admin sessions listed", slog.Int(logging.FieldCount, len(out)))
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	want := []byte("Bearer " + h.token)
	return subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), want) == 1
}

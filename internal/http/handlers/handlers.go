package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nha-sim-service/internal/app/forecast"
	"github.com/preston-bernstein/nha-sim-service/internal/app/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	domainseasons "github.com/preston-bernstein/nha-sim-service/internal/domain/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/export"
)

const (
	maxBodyBytes = 1 << 16
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler wires HTTP routes to the season and forecast services.
type Handler struct {
	seasons  *seasons.Service
	forecast *forecast.Service
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(seasonSvc *seasons.Service, forecastSvc *forecast.Service, logger *slog.Logger) *Handler {
	return &Handler{
		seasons:  seasonSvc,
		forecast: forecastSvc,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the configured league must load and validate.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if _, err := h.seasons.League(r.Context()); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// League returns the rosters and tiers seasons are simulated with.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	l, err := h.seasons.League(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"east":  l.East,
		"west":  l.West,
		"teams": l.Teams(),
	}, h.logger)
}

// Odds prices a championship bet: /v1/odds?team=...&seed=...
func (h *Handler) Odds(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	if team == "" {
		writeError(w, r, nethttp.StatusBadRequest, "team is required", h.logger)
		return
	}
	seed := 1
	if raw := r.URL.Query().Get("seed"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "seed must be an integer", h.logger)
			return
		}
		seed = n
	}
	quote, err := h.seasons.Quote(r.Context(), team, seed)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, quote, h.logger)
}

type createSeasonRequest struct {
	Seed *uint64 `json:"seed"`
}

// CreateSeason simulates a regular season and opens a session for it.
func (h *Handler) CreateSeason(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req createSeasonRequest
	if !h.decodeBody(w, r, &req, true) {
		return
	}
	sess, err := h.seasons.Start(r.Context(), req.Seed)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.Header().Set("Location", "/v1/seasons/"+sess.ID)
	writeJSON(w, nethttp.StatusCreated, sess.View(), h.logger)
}

// Season returns a session with its standings, priced seeds, bet, and bracket.
func (h *Handler) Season(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.seasons.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, sess.View(), h.logger)
}

// Standings returns the league table, or one conference's with ?conference=.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.seasons.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	conf, ok := parseConference(r.URL.Query().Get("conference"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "conference must be East or West", h.logger)
		return
	}
	resp := domainseasons.StandingsResponse{Conference: conf, Standings: sess.Season.Standings}
	if conf != "" {
		resp.Standings = sess.Season.Standings.Conference(conf)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// StandingsXLSX downloads the standings workbook.
func (h *Handler) StandingsXLSX(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.seasons.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteStandingsXLSX(&buf, sess.Season); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	h.writeFile(w, xlsxMIME, fmt.Sprintf("standings-%s.xlsx", sess.ID), buf.Bytes())
}

// StandingsPNG renders a points chart, optionally for one conference.
func (h *Handler) StandingsPNG(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.seasons.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	conf, ok := parseConference(r.URL.Query().Get("conference"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "conference must be East or West", h.logger)
		return
	}
	rows, title := sess.Season.Standings, "NHA standings"
	if conf != "" {
		rows, title = rows.Conference(conf), fmt.Sprintf("NHA %s standings", conf)
	}
	var buf bytes.Buffer
	if err := export.WriteStandingsPNG(&buf, rows, title); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	h.writeFile(w, "image/png", "", buf.Bytes())
}

type placeBetRequest struct {
	Team  string  `json:"team"`
	Stake float64 `json:"stake"`
}

// PlaceBet records a championship bet on the session.
func (h *Handler) PlaceBet(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req placeBetRequest
	if !h.decodeBody(w, r, &req, false) {
		return
	}
	if strings.TrimSpace(req.Team) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "team is required", h.logger)
		return
	}
	bet, err := h.seasons.PlaceBet(r.Context(), chi.URLParam(r, "id"), req.Team, req.Stake)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, bet, h.logger)
}

// RunPlayoffs simulates the session's playoffs and settles its bet.
func (h *Handler) RunPlayoffs(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.seasons.RunPlayoffs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, domainseasons.PlayoffsResponse{
		Bracket: *sess.Bracket,
		Outcome: sess.Outcome,
	}, h.logger)
}

// Bracket returns the played bracket with ?highlight= marking one team's path.
func (h *Handler) Bracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	bracket, err := h.seasons.Bracket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	highlight := strings.TrimSpace(r.URL.Query().Get("highlight"))
	writeJSON(w, nethttp.StatusOK, domainseasons.NewBracketView(bracket, highlight), h.logger)
}

type monteCarloRequest struct {
	Runs int     `json:"runs"`
	Seed *uint64 `json:"seed"`
}

// MonteCarlo forecasts championship odds by simulating many seasons.
func (h *Handler) MonteCarlo(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req monteCarloRequest
	if !h.decodeBody(w, r, &req, false) {
		return
	}
	res, err := h.forecast.Forecast(r.Context(), req.Runs, req.Seed)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// decodeBody reads a JSON body into dest. An empty body is accepted only when optional.
func (h *Handler) decodeBody(w nethttp.ResponseWriter, r *nethttp.Request, dest any, optional bool) bool {
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(dest)
	switch {
	case err == nil:
		return true
	case errors.Is(err, io.EOF) && optional:
		return true
	case errors.Is(err, io.EOF):
		writeError(w, r, nethttp.StatusBadRequest, "request body is required", h.logger)
	default:
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body: "+err.Error(), h.logger)
	}
	return false
}

func (h *Handler) writeFile(w nethttp.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(data); err != nil && h.logger != nil {
		h.logger.Error("failed to write file response", "error", err)
	}
}

func parseConference(raw string) (league.Conference, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", true
	case "east":
		return league.East, true
	case "west":
		return league.West, true
	default:
		return "", false
	}
}

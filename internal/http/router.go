package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nha-sim-service/internal/http/handlers"
	"github.com/preston-bernstein/nha-sim-service/internal/http/middleware"
	"github.com/preston-bernstein/nha-sim-service/internal/metrics"
)

// RouterOptions carries the optional pieces of the HTTP surface.
type RouterOptions struct {
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	// Limiter guards the endpoints that run simulations; nil disables limiting.
	Limiter *middleware.RateLimiter
	// Admin routes are mounted only when set.
	Admin *handlers.AdminHandler
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(opts.Logger, opts.Recorder, next)
	})

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/league", handler.League)
		r.Get("/odds", handler.Odds)

		r.Route("/seasons/{id}", func(r chi.Router) {
			r.Get("/", handler.Season)
			r.Get("/standings", handler.Standings)
			r.Get("/standings.xlsx", handler.StandingsXLSX)
			r.Get("/standings.png", handler.StandingsPNG)
			r.Get("/bracket", handler.Bracket)
			r.Post("/bets", handler.PlaceBet)
			r.With(opts.Limiter.Middleware).Post("/playoffs", handler.RunPlayoffs)
		})

		r.Group(func(r chi.Router) {
			r.Use(opts.Limiter.Middleware)
			r.Post("/seasons", handler.CreateSeason)
			r.Post("/montecarlo", handler.MonteCarlo)
		})
	})

	if opts.Admin != nil {
		r.Get("/admin/sessions", opts.Admin.Sessions)
	}

	r.NotFound(func(w nethttp.ResponseWriter, req *nethttp.Request) {
		handlers.NotFound(w, req, opts.Logger)
	})
	r.MethodNotAllowed(func(w nethttp.ResponseWriter, req *nethttp.Request) {
		handlers.MethodNotAllowed(w, req, opts.Logger)
	})
	return r
}

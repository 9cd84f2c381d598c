package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nha-sim-service/internal/app/forecast"
	"github.com/preston-bernstein/nha-sim-service/internal/app/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/config"
	httpapi "github.com/preston-bernstein/nha-sim-service/internal/http"
	"github.com/preston-bernstein/nha-sim-service/internal/http/handlers"
	"github.com/preston-bernstein/nha-sim-service/internal/http/middleware"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/metrics"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/store"
)

var (
	metricsSetup = metrics.Setup
	adminToken   = handlers.AdminTokenFromEnv
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	seasons       *seasons.Service
	forecast      *forecast.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured league provider.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.LeagueProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.LeagueProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	memoryStore, seasonSvc, forecastSvc := buildServices(cfg, provider, recorder, logger)
	httpSrv := buildHTTPServer(cfg, seasonSvc, forecastSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		seasons:       seasonSvc,
		forecast:      forecastSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, provider providers.LeagueProvider, recorder *metrics.Recorder, logger *slog.Logger) (*store.MemoryStore, *seasons.Service, *forecast.Service) {
	simCfg := cfg.Simulation
	memoryStore := store.NewMemoryStore(simCfg.MaxSessions)
	seasonSvc := seasons.NewService(memoryStore, provider, seasons.Options{
		Seed:         simCfg.Seed,
		BestOf:       simCfg.BestOf,
		PlayoffTeams: simCfg.PlayoffTeams,
	}, recorder, logger)
	forecastSvc := forecast.NewService(provider, forecast.Options{
		Workers:      simCfg.Workers,
		MaxRuns:      simCfg.MaxRuns,
		BestOf:       simCfg.BestOf,
		PlayoffTeams: simCfg.PlayoffTeams,
	}, recorder, logger)
	return memoryStore, seasonSvc, forecastSvc
}

func buildHTTPServer(cfg config.Config, seasonSvc *seasons.Service, forecastSvc *forecast.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(seasonSvc, forecastSvc, logger)

	opts := httpapi.RouterOptions{
		Logger:   logger,
		Recorder: recorder,
		Limiter:  middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	}
	if token := adminToken(); token != "" {
		opts.Admin = handlers.NewAdminHandler(seasonSvc, token, logger)
	}
	router := httpapi.NewRouter(handler, opts)

	var root http.Handler = router
	if cfg.RequestTimeout > 0 {
		root = http.TimeoutHandler(router, cfg.RequestTimeout, `{"error":"request timed out"}`)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.RequestTimeout),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, name+" server starting", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/metrics"
	"github.com/preston-bernstein/nha-sim-service/internal/montecarlo"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

// Options bounds Monte Carlo requests.
type Options struct {
	Workers      int
	MaxRuns      int
	BestOf       int
	PlayoffTeams int
}

// Service runs championship forecasts against the configured league.
type Service struct {
	provider providers.LeagueProvider
	opts     Options
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a forecast Service.
func NewService(provider providers.LeagueProvider, opts Options, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{provider: provider, opts: opts, recorder: recorder, logger: logger}
}

// Forecast simulates runs seasons. A nil seed picks one from the clock; the chosen seed is
// reported in the result so the forecast can be repeated.
func (s *Service) Forecast(ctx context.Context, runs int, seed *uint64) (montecarlo.Result, error) {
	if runs <= 0 || (s.opts.MaxRuns > 0 && runs > s.opts.MaxRuns) {
		return montecarlo.Result{}, fmt.Errorf("%w: got %d, limit %d", montecarlo.ErrInvalidRuns, runs, s.opts.MaxRuns)
	}
	l, err := s.provider.FetchLeague(ctx)
	if err != nil {
		return montecarlo.Result{}, fmt.Errorf("load league: %w", err)
	}

	base := sim.TimeSeed()
	if seed != nil {
		base = *seed
	}

	started := time.Now()
	res, err := montecarlo.Run(ctx, l, montecarlo.Options{
		Runs:         runs,
		Seed:         base,
		Workers:      s.opts.Workers,
		BestOf:       s.opts.BestOf,
		PlayoffTeams: s.opts.PlayoffTeams,
	})
	elapsed := time.Since(started)
	s.recorder.RecordSimulation(metrics.KindMonteCarlo, elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "forecast failed", slog.Int(logging.FieldRuns, runs), "error", err)
		return montecarlo.Result{}, err
	}
	s.recorder.RecordMonteCarloRuns(runs)

	attrs := []any{
		slog.Int(logging.FieldRuns, runs),
		slog.Uint64(logging.FieldSeed, base),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if len(res.Teams) > 0 {
		attrs = append(attrs, slog.String("favorite", res.Teams[0].Team))
	}
	logging.Info(logger, "forecast complete", attrs...)
	return res, nil
}

package forecast

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nha-sim-service/internal/metrics"
	"github.com/preston-bernstein/nha-sim-service/internal/montecarlo"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/fixture"
)

func TestForecastRecordsRunsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	rec := metrics.NewRecorder()
	svc := NewService(fixture.New(), Options{Workers: 2, MaxRuns: 100}, rec, slog.New(slog.NewTextHandler(&buf, nil)))

	seed := uint64(12)
	res, err := svc.Forecast(context.Background(), 10, &seed)
	require.NoError(t, err)
	require.Equal(t, uint64(12), res.Seed)
	require.Equal(t, 10, res.Runs)
	require.Equal(t, 10, rec.MonteCarloRuns())
	require.Equal(t, 1, rec.Simulations(metrics.KindMonteCarlo))
	require.True(t, strings.Contains(buf.String(), "forecast complete"), buf.String())
}

func TestForecastEnforcesRunLimit(t *testing.T) {
	svc := NewService(fixture.New(), Options{MaxRuns: 5}, nil, nil)
	_, err := svc.Forecast(context.Background(), 6, nil)
	require.ErrorIs(t, err, montecarlo.ErrInvalidRuns)
	_, err = svc.Forecast(context.Background(), 0, nil)
	require.ErrorIs(t, err, montecarlo.ErrInvalidRuns)
}

func TestForecastPicksSeedWhenMissing(t *testing.T) {
	svc := NewService(fixture.New(), Options{Workers: 1}, nil, nil)
	res, err := svc.Forecast(context.Background(), 2, nil)
	require.NoError(t, err)
	require.NotZero(t, res.Seed)
}

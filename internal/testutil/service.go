package testutil

import (
	"github.com/preston-bernstein/nha-sim-service/internal/app/forecast"
	"github.com/preston-bernstein/nha-sim-service/internal/app/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/fixture"
	"github.com/preston-bernstein/nha-sim-service/internal/store"
)

// NewSeasonService builds a season service over an unbounded in-memory store. A nil
// provider serves the default league.
func NewSeasonService(p providers.LeagueProvider) *seasons.Service {
	if p == nil {
		p = fixture.New()
	}
	return seasons.NewService(store.NewMemoryStore(0), p, seasons.Options{}, nil, nil)
}

// NewForecastService builds a forecast service with two workers and a 500-run limit.
func NewForecastService(p providers.LeagueProvider) *forecast.Service {
	if p == nil {
		p = fixture.New()
	}
	return forecast.NewService(p, forecast.Options{Workers: 2, MaxRuns: 500}, nil, nil)
}

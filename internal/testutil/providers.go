package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// StaticProvider returns the same league on every fetch and counts calls.
type StaticProvider struct {
	League league.League
	calls  atomic.Int32
}

func (p *StaticProvider) FetchLeague(ctx context.Context) (league.League, error) {
	_ = ctx
	p.calls.Add(1)
	return p.League, nil
}

// Calls returns how many times FetchLeague ran.
func (p *StaticProvider) Calls() int {
	return int(p.calls.Load())
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchLeague(ctx context.Context) (league.League, error) {
	_ = ctx
	return league.League{}, p.Err
}

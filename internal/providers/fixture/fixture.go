package fixture

import (
	"context"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// Provider returns the built-in 24-team NHA league, useful for local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchLeague returns a fresh copy of the default league.
func (p *Provider) FetchLeague(ctx context.Context) (league.League, error) {
	if err := ctx.Err(); err != nil {
		return league.League{}, err
	}
	return league.Default(), nil
}

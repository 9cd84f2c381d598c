package providers

import (
	"context"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// LeagueProvider supplies the rosters and tier table a season is simulated with.
type LeagueProvider interface {
	FetchLeague(ctx context.Context) (league.League, error)
}

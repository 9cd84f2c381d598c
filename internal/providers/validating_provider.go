package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
)

// validatingProvider rejects leagues that cannot be simulated and logs what was loaded.
type validatingProvider struct {
	inner  LeagueProvider
	logger *slog.Logger
	name   string
}

// NewValidatingProvider wraps inner so every fetched league is validated.
func NewValidatingProvider(inner LeagueProvider, logger *slog.Logger, name string) LeagueProvider {
	return &validatingProvider{inner: inner, logger: logger, name: name}
}

func (v *validatingProvider) FetchLeague(ctx context.Context) (league.League, error) {
	l, err := v.inner.FetchLeague(ctx)
	if err != nil {
		logWithProvider(ctx, v.logger, slog.LevelWarn, v.name, "league fetch failed", "error", err)
		if _, ok := AsLoadError(err); !ok {
			err = &LoadError{Provider: v.name, Err: err}
		}
		return league.League{}, err
	}
	if err := l.Validate(); err != nil {
		logWithProvider(ctx, v.logger, slog.LevelWarn, v.name, "league rejected", "error", err)
		return league.League{}, &LoadError{Provider: v.name, Err: err}
	}
	logWithProvider(ctx, v.logger, slog.LevelInfo, v.name, "league loaded",
		slog.Int("east", len(l.East)),
		slog.Int("west", len(l.West)),
		slog.Int(logging.FieldCount, l.Size()),
	)
	return l, nil
}

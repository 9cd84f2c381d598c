package server

import (
	"log/slog"

	"github.com/preston-bernstein/nha-sim-service/internal/config"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
)

// providerFactory assembles the league provider with the shared validation wrapper.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.LeagueProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.LeagueProvider) providers.LeagueProvider {
	return providers.NewValidatingProvider(base, f.logger, normalizeProviderName(cfg.LeagueProvider, base))
}

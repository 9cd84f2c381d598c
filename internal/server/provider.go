package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nha-sim-service/internal/config"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/file"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.LeagueProvider {
	switch strings.ToLower(cfg.LeagueProvider) {
	case "fixture", "":
		return fixture.New()
	case "file":
		if cfg.LeagueFile == "" {
			logging.Warn(logger, "file provider requires LEAGUE_FILE, falling back to fixture")
			return fixture.New()
		}
		return file.New(cfg.LeagueFile)
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.LeagueProvider)
		return fixture.New()
	}
}

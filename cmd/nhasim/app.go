package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/nha-sim-service/internal/app/forecast"
	"github.com/preston-bernstein/nha-sim-service/internal/app/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/metrics"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/file"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/fixture"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
	"github.com/preston-bernstein/nha-sim-service/internal/store"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed; omit for a time-based seed",
	}
	leagueFileFlag = &cli.StringFlag{
		Name:    "league-file",
		Usage:   "YAML league definition; defaults to the built-in NHA league",
		EnvVars: []string{"LEAGUE_FILE"},
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: formatText,
		Usage: "output format: text or json",
	}
	bestOfFlag = &cli.IntFlag{
		Name:  "best-of",
		Value: sim.DefaultBestOf,
		Usage: "playoff series length (odd)",
	}
	playoffTeamsFlag = &cli.IntFlag{
		Name:  "playoff-teams",
		Value: sim.DefaultPlayoffTeams,
		Usage: "playoff teams per conference (power of two)",
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "warn",
		Usage:   "log level written to stderr",
		EnvVars: []string{"LOG_LEVEL"},
	}
)

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "nhasim",
		Usage:     "simulate NHA handball seasons, playoffs, and championship odds",
		Version:   appVersion,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			leagueFileFlag,
			formatFlag,
			bestOfFlag,
			playoffTeamsFlag,
			logLevelFlag,
		},
		Before: func(c *cli.Context) error {
			switch f := strings.ToLower(c.String(formatFlag.Name)); f {
			case formatText, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", f)
			}
		},
		Commands: []*cli.Command{
			newLeagueCommand(),
			newSeasonCommand(),
			newPlayoffsCommand(),
			newOddsCommand(),
			newMonteCarloCommand(),
			newExportCommand(),
		},
	}
}

// env bundles what every command needs, built from the global flags.
type env struct {
	out      io.Writer
	format   string
	logger   *slog.Logger
	provider providers.LeagueProvider
	seasons  *seasons.Service
	forecast *forecast.Service
}

func newEnv(c *cli.Context) *env {
	logger := logging.NewLogger(logging.Config{
		Level:   c.String(logLevelFlag.Name),
		Service: "nhasim",
		Version: appVersion,
		Output:  c.App.ErrWriter,
	})

	var base providers.LeagueProvider = fixture.New()
	name := "fixture"
	if path := c.String(leagueFileFlag.Name); path != "" {
		base = file.New(path)
		name = "file"
	}
	provider := providers.NewValidatingProvider(base, logger, name)

	recorder := metrics.NewRecorder()
	bestOf := c.Int(bestOfFlag.Name)
	playoffTeams := c.Int(playoffTeamsFlag.Name)
	workers := c.Int(workersFlag.Name)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &env{
		out:      c.App.Writer,
		format:   strings.ToLower(c.String(formatFlag.Name)),
		logger:   logger,
		provider: provider,
		seasons: seasons.NewService(store.NewMemoryStore(1), provider, seasons.Options{
			BestOf:       bestOf,
			PlayoffTeams: playoffTeams,
		}, recorder, logger),
		forecast: forecast.NewService(provider, forecast.Options{
			Workers:      workers,
			BestOf:       bestOf,
			PlayoffTeams: playoffTeams,
		}, recorder, logger),
	}
}

// seedFrom returns nil when --seed was not given so the services pick a time seed.
func seedFrom(c *cli.Context) *uint64 {
	if !c.IsSet(seedFlag.Name) {
		return nil
	}
	seed := c.Uint64(seedFlag.Name)
	return &seed
}

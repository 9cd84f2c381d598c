package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/nha-sim-service/internal/betting"
	domainseasons "github.com/preston-bernstein/nha-sim-service/internal/domain/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/export"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/file"
)

var (
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Monte Carlo workers; defaults to GOMAXPROCS",
	}
	runsFlag = &cli.IntFlag{
		Name:  "runs",
		Value: 1000,
		Usage: "number of full seasons to simulate",
	}
	teamFlag = &cli.StringFlag{
		Name:  "team",
		Usage: "team name",
	}
	playoffSeedFlag = &cli.IntFlag{
		Name:  "playoff-seed",
		Value: 1,
		Usage: "conference seed to price the team at",
	}
	betTeamFlag = &cli.StringFlag{
		Name:  "bet",
		Usage: "team to back for the championship",
	}
	stakeFlag = &cli.Float64Flag{
		Name:  "stake",
		Value: 100,
		Usage: "bet stake",
	}
	highlightFlag = &cli.StringFlag{
		Name:  "highlight",
		Usage: "team to mark in the bracket",
	}
	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Required: true,
		Usage:    "destination file; .xlsx writes a workbook, .png a standings chart",
	}
)

var errUnknownExport = errors.New("output must end in .xlsx or .png")

func newLeagueCommand() *cli.Command {
	return &cli.Command{
		Name:  "league",
		Usage: "print the league in the YAML form --league-file accepts",
		Action: func(c *cli.Context) error {
			e := newEnv(c)
			l, err := e.seasons.League(c.Context)
			if err != nil {
				return err
			}
			if e.format == formatJSON {
				return writeJSON(e.out, l)
			}
			return file.Encode(e.out, l)
		},
	}
}

func newSeasonCommand() *cli.Command {
	return &cli.Command{
		Name:  "season",
		Usage: "simulate a regular season and print standings with the playoff field",
		Flags: []cli.Flag{seedFlag},
		Action: func(c *cli.Context) error {
			e := newEnv(c)
			sess, err := e.seasons.Start(c.Context, seedFrom(c))
			if err != nil {
				return err
			}
			if e.format == formatJSON {
				return writeJSON(e.out, sess.View())
			}
			return renderSeason(e.out, sess.View())
		},
	}
}

func newPlayoffsCommand() *cli.Command {
	return &cli.Command{
		Name:  "playoffs",
		Usage: "simulate a season, optionally place a bet, then play the postseason",
		Flags: []cli.Flag{seedFlag, betTeamFlag, stakeFlag, highlightFlag},
		Action: func(c *cli.Context) error {
			e := newEnv(c)
			sess, err := e.seasons.Start(c.Context, seedFrom(c))
			if err != nil {
				return err
			}
			highlight := c.String(highlightFlag.Name)
			if team := c.String(betTeamFlag.Name); team != "" {
				bet, err := e.seasons.PlaceBet(c.Context, sess.ID, team, c.Float64(stakeFlag.Name))
				if err != nil {
					return err
				}
				if highlight == "" {
					highlight = bet.Team
				}
			}
			sess, err = e.seasons.RunPlayoffs(c.Context, sess.ID)
			if err != nil {
				return err
			}
			view := domainseasons.NewBracketView(*sess.Bracket, highlight)
			if e.format == formatJSON {
				return writeJSON(e.out, struct {
					Seed    uint64                    `json:"seed"`
					Bracket domainseasons.BracketView `json:"bracket"`
					Bet     *betting.Bet              `json:"bet,omitempty"`
					Outcome *betting.Outcome          `json:"outcome,omitempty"`
				}{sess.Seed, view, sess.Bet, sess.Outcome})
			}
			return renderPlayoffs(e.out, sess, view)
		},
	}
}

func newOddsCommand() *cli.Command {
	return &cli.Command{
		Name:  "odds",
		Usage: "quote championship odds for one team, or for a simulated playoff field",
		Flags: []cli.Flag{seedFlag, teamFlag, playoffSeedFlag},
		Action: func(c *cli.Context) error {
			e := newEnv(c)
			if team := c.String(teamFlag.Name); team != "" {
				quote, err := e.seasons.Quote(c.Context, team, c.Int(playoffSeedFlag.Name))
				if err != nil {
					return err
				}
				if e.format == formatJSON {
					return writeJSON(e.out, quote)
				}
				return renderSeedRows(e.out, "", []domainseasons.SeedRow{domainseasons.SeedRow(quote)})
			}

			sess, err := e.seasons.Start(c.Context, seedFrom(c))
			if err != nil {
				return err
			}
			view := sess.View()
			if e.format == formatJSON {
				return writeJSON(e.out, struct {
					Seed uint64                  `json:"seed"`
					East []domainseasons.SeedRow `json:"east"`
					West []domainseasons.SeedRow `json:"west"`
				}{view.Seed, view.East, view.West})
			}
			fmt.Fprintf(e.out, "seed %d\n", view.Seed)
			if err := renderSeedRows(e.out, "East", view.East); err != nil {
				return err
			}
			return renderSeedRows(e.out, "West", view.West)
		},
	}
}

func newMonteCarloCommand() *cli.Command {
	return &cli.Command{
		Name:  "montecarlo",
		Usage: "estimate title, finals, and playoff odds over many seasons",
		Flags: []cli.Flag{seedFlag, runsFlag, workersFlag},
		Action: func(c *cli.Context) error {
			e := newEnv(c)
			result, err := e.forecast.Forecast(c.Context, c.Int(runsFlag.Name), seedFrom(c))
			if err != nil {
				return err
			}
			if e.format == formatJSON {
				return writeJSON(e.out, result)
			}
			return renderForecast(e.out, result)
		},
	}
}

func newExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "simulate a season and write its standings to a file",
		Flags: []cli.Flag{seedFlag, outputFlag},
		Action: func(c *cli.Context) error {
			path := c.String(outputFlag.Name)
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".xlsx" && ext != ".png" {
				return fmt.Errorf("%w: %s", errUnknownExport, path)
			}

			e := newEnv(c)
			sess, err := e.seasons.Start(c.Context, seedFrom(c))
			if err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if ext == ".xlsx" {
				err = export.WriteStandingsXLSX(f, sess.Season)
			} else {
				err = export.WriteStandingsPNG(f, sess.Season.Standings, fmt.Sprintf("NHA standings (seed %d)", sess.Seed))
			}
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(e.out, "wrote %s (seed %d)\n", path, sess.Seed)
			return nil
		},
	}
}

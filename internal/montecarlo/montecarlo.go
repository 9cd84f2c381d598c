// Package montecarlo estimates championship probabilities by simulating many complete
// seasons in parallel.
package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

// ErrInvalidRuns is returned when the run count is not positive.
var ErrInvalidRuns = errors.New("runs must be positive")

// Options controls a batch of simulations.
type Options struct {
	Runs         int
	Seed         uint64
	Workers      int
	BestOf       int
	PlayoffTeams int
}

// TeamOdds aggregates one team's results across every run.
type TeamOdds struct {
	Team            string            `json:"team"`
	Conference      league.Conference `json:"conference"`
	Tier            league.Tier       `json:"tier"`
	Titles          int               `json:"titles"`
	Finals          int               `json:"finals"`
	Playoffs        int               `json:"playoffs"`
	TitlePercent    float64           `json:"titlePercent"`
	FinalsPercent   float64           `json:"finalsPercent"`
	PlayoffsPercent float64           `json:"playoffsPercent"`
	AvgPoints       float64           `json:"avgPoints"`
}

// Result is the aggregate of a batch, most likely champion first.
type Result struct {
	Runs  int        `json:"runs"`
	Seed  uint64     `json:"seed"`
	Teams []TeamOdds `json:"teams"`
}

type tally struct {
	titles, finals, playoffs, points int
}

// Run simulates opts.Runs seasons with playoffs. Run i draws from its own stream seeded
// sim.RunSeed(opts.Seed, i), so the result depends only on the league and options, never on
// the worker count. Cancellation is checked between runs.
func Run(ctx context.Context, l league.League, opts Options) (Result, error) {
	if opts.Runs <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRuns, opts.Runs)
	}
	if err := l.Validate(); err != nil {
		return Result{}, err
	}
	if opts.BestOf == 0 {
		opts.BestOf = sim.DefaultBestOf
	}
	if opts.PlayoffTeams == 0 {
		opts.PlayoffTeams = sim.DefaultPlayoffTeams
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > opts.Runs {
		workers = opts.Runs
	}

	classifier := l.Classifier()
	partials := make([]map[string]*tally, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := span(opts.Runs, workers, w)
		local := newTally(l)
		partials[w] = local
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				engine := sim.NewSeeded(sim.RunSeed(opts.Seed, i),
					sim.WithClassifier(classifier),
					sim.WithBestOf(opts.BestOf),
				)
				season, bracket, err := engine.Run(l, opts.PlayoffTeams)
				if err != nil {
					return fmt.Errorf("run %d: %w", i, err)
				}
				record(local, season, bracket)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		Runs:  opts.Runs,
		Seed:  opts.Seed,
		Teams: summarize(l, merge(l, partials), opts.Runs),
	}, nil
}

// span splits runs into contiguous, near-equal chunks and returns chunk w.
func span(runs, workers, w int) (int, int) {
	size, extra := runs/workers, runs%workers
	lo := w*size + min(w, extra)
	hi := lo + size
	if w < extra {
		hi++
	}
	return lo, hi
}

func newTally(l league.League) map[string]*tally {
	out := make(map[string]*tally, l.Size())
	for _, name := range l.Names() {
		out[name] = &tally{}
	}
	return out
}

func record(t map[string]*tally, season sim.Season, bracket sim.Bracket) {
	for name, r := range season.Records {
		t[name].points += r.Points
	}
	for _, name := range bracket.East.Seeds {
		t[name].playoffs++
	}
	for _, name := range bracket.West.Seeds {
		t[name].playoffs++
	}
	t[bracket.Final.TeamA].finals++
	t[bracket.Final.TeamB].finals++
	t[bracket.Champion].titles++
}

func merge(l league.League, partials []map[string]*tally) map[string]*tally {
	total := newTally(l)
	for _, p := range partials {
		for name, t := range p {
			sum := total[name]
			sum.titles += t.titles
			sum.finals += t.finals
			sum.playoffs += t.playoffs
			sum.points += t.points
		}
	}
	return total
}

func summarize(l league.League, totals map[string]*tally, runs int) []TeamOdds {
	pct := func(n int) float64 {
		return sim.RoundCents(100 * float64(n) / float64(runs))
	}
	out := make([]TeamOdds, 0, len(totals))
	for _, team := range l.Teams() {
		t := totals[team.Name]
		out = append(out, TeamOdds{
			Team:            team.Name,
			Conference:      team.Conference,
			Tier:            team.Tier,
			Titles:          t.titles,
			Finals:          t.finals,
			Playoffs:        t.playoffs,
			TitlePercent:    pct(t.titles),
			FinalsPercent:   pct(t.finals),
			PlayoffsPercent: pct(t.playoffs),
			AvgPoints:       sim.RoundCents(float64(t.points) / float64(runs)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Titles != out[j].Titles {
			return out[i].Titles > out[j].Titles
		}
		return out[i].Team < out[j].Team
	})
	return out
}

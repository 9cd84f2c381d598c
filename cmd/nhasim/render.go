package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	domainseasons "github.com/preston-bernstein/nha-sim-service/internal/domain/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/montecarlo"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderSeason(w io.Writer, view domainseasons.SessionView) error {
	fmt.Fprintf(w, "seed %d\n\n", view.Seed)
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTEAM\tCONF\tW\tL\tPTS")
	for i, row := range view.Standings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n", i+1, row.Team, row.Conference, row.Wins, row.Losses, row.Points)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if err := renderSeedRows(w, "East", view.East); err != nil {
		return err
	}
	return renderSeedRows(w, "West", view.West)
}

func renderSeedRows(w io.Writer, title string, rows []domainseasons.SeedRow) error {
	if title != "" {
		fmt.Fprintf(w, "\n%s playoff field\n", title)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "SEED\tTEAM\tTIER\tODDS\tIMPLIED")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f%%\n", row.Seed, row.Team, row.Tier, row.Odds, row.ImpliedPercent)
	}
	return tw.Flush()
}

func renderPlayoffs(w io.Writer, sess domainseasons.Session, view domainseasons.BracketView) error {
	fmt.Fprintf(w, "seed %d\n", sess.Seed)
	for _, conf := range []domainseasons.ConferenceView{view.East, view.West} {
		fmt.Fprintf(w, "\n%s\n", conf.Conference)
		for i, round := range conf.Rounds {
			fmt.Fprintf(w, "  round %d\n", i+1)
			for _, m := range round {
				fmt.Fprintf(w, "    %s\n", matchupLine(m))
			}
		}
		fmt.Fprintf(w, "  champion: %s\n", conf.Champion)
	}
	fmt.Fprintf(w, "\nfinal\n    %s\n", matchupLine(view.Final))
	fmt.Fprintf(w, "\nchampion: %s%s\n", view.Champion, mark(view.ChampionHighlighted))

	if sess.Bet != nil && sess.Outcome != nil {
		result := "lost"
		if sess.Outcome.Won {
			result = "won"
		}
		fmt.Fprintf(w, "\nbet: %.2f on %s at %.2f, %s, payout %.2f, net %+.2f\n",
			sess.Bet.Stake, sess.Bet.Team, sess.Bet.Odds, result, sess.Outcome.Payout, sess.Outcome.Net)
	}
	return nil
}

func matchupLine(m domainseasons.MatchupView) string {
	a := seeded(m.SeedA, m.TeamA) + mark(m.HighlightA)
	b := seeded(m.SeedB, m.TeamB) + mark(m.HighlightB)
	return fmt.Sprintf("%s vs %s: %s wins %d-%d", a, b, m.Winner, max(m.WinsA, m.WinsB), min(m.WinsA, m.WinsB))
}

func seeded(seed int, team string) string {
	if seed == 0 {
		return team
	}
	return fmt.Sprintf("(%d) %s", seed, team)
}

func mark(on bool) string {
	if on {
		return " *"
	}
	return ""
}

func renderForecast(w io.Writer, result montecarlo.Result) error {
	fmt.Fprintf(w, "%d seasons, seed %d\n\n", result.Runs, result.Seed)
	tw := newTable(w)
	fmt.Fprintln(tw, "TEAM\tCONF\tTIER\tTITLE\tFINALS\tPLAYOFFS\tAVG PTS")
	for _, t := range result.Teams {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
			t.Team, t.Conference, t.Tier,
			pct(t.TitlePercent), pct(t.FinalsPercent), pct(t.PlayoffsPercent), t.AvgPoints)
	}
	return tw.Flush()
}

func pct(v float64) string {
	return strings.TrimSpace(fmt.Sprintf("%6.2f%%", v))
}

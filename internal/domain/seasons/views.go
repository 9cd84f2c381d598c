package seasons

import (
	"time"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

// SeedRows prices every seed in one conference's playoff field.
func SeedRows(season sim.Season, c *league.Classifier, conf league.Conference) []SeedRow {
	seeds := season.Seeds(conf)
	rows := make([]SeedRow, len(seeds))
	for i, team := range seeds {
		rows[i] = SeedRow(Quote(c, team, i+1))
	}
	return rows
}

// View flattens a session into its API shape.
func (s Session) View() SessionView {
	c := s.Season.League.Classifier()
	return SessionView{
		ID:        s.ID,
		Seed:      s.Seed,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		Standings: s.Season.Standings,
		East:      SeedRows(s.Season, c, league.East),
		West:      SeedRows(s.Season, c, league.West),
		Bet:       s.Bet,
		Bracket:   s.Bracket,
		Outcome:   s.Outcome,
	}
}

// MatchupView is a series with highlight flags for the rendered bracket.
type MatchupView struct {
	sim.Matchup
	HighlightA bool `json:"highlightA"`
	HighlightB bool `json:"highlightB"`
}

// ConferenceView is one conference's rounds with highlight flags.
type ConferenceView struct {
	Conference league.Conference `json:"conference"`
	Rounds     [][]MatchupView   `json:"rounds"`
	Champion   string            `json:"champion"`
}

// BracketView is the payload returned by /v1/seasons/{id}/bracket.
type BracketView struct {
	Highlight           string         `json:"highlight,omitempty"`
	East                ConferenceView `json:"east"`
	West                ConferenceView `json:"west"`
	Final               MatchupView    `json:"final"`
	Champion            string         `json:"champion"`
	ChampionHighlighted bool           `json:"championHighlighted"`
}

// NewBracketView marks every appearance of highlight in b. An empty highlight marks nothing.
func NewBracketView(b sim.Bracket, highlight string) BracketView {
	return BracketView{
		Highlight:           highlight,
		East:                conferenceView(b.East, highlight),
		West:                conferenceView(b.West, highlight),
		Final:               matchupView(b.Final, highlight),
		Champion:            b.Champion,
		ChampionHighlighted: league.SameTeam(b.Champion, highlight),
	}
}

func conferenceView(c sim.ConferenceBracket, highlight string) ConferenceView {
	rounds := make([][]MatchupView, len(c.Rounds))
	for i, r := range c.Rounds {
		rounds[i] = make([]MatchupView, len(r))
		for j, m := range r {
			rounds[i][j] = matchupView(m, highlight)
		}
	}
	return ConferenceView{Conference: c.Conference, Rounds: rounds, Champion: c.Champion}
}

func matchupView(m sim.Matchup, highlight string) MatchupView {
	return MatchupView{
		Matchup:    m,
		HighlightA: league.SameTeam(m.TeamA, highlight),
		HighlightB: league.SameTeam(m.TeamB, highlight),
	}
}

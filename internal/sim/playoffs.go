package sim

import (
	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// Matchup is one resolved series. SeedA and SeedB are conference seeds (1-based).
type Matchup struct {
	TeamA  string `json:"teamA"`
	TeamB  string `json:"teamB"`
	Winner string `json:"winner"`
	WinsA  int    `json:"winsA"`
	WinsB  int    `json:"winsB"`
	SeedA  int    `json:"seedA,omitempty"`
	SeedB  int    `json:"seedB,omitempty"`
}

// Loser returns the team that did not win the series.
func (m Matchup) Loser() string {
	if m.Winner == m.TeamA {
		return m.TeamB
	}
	return m.TeamA
}

// Games returns the number of games the series took.
func (m Matchup) Games() int {
	return m.WinsA + m.WinsB
}

// Involves reports whether team played in the series, matched loosely.
func (m Matchup) Involves(team string) bool {
	return league.SameTeam(m.TeamA, team) || league.SameTeam(m.TeamB, team)
}

// Round is one elimination round in pairing order.
type Round []Matchup

// Winners returns the survivors of the round in pairing order.
func (r Round) Winners() []string {
	out := make([]string, len(r))
	for i, m := range r {
		out[i] = m.Winner
	}
	return out
}

// ConferenceBracket holds every round of one conference, first round first.
type ConferenceBracket struct {
	Conference league.Conference `json:"conference"`
	Seeds      []string          `json:"seeds"`
	Rounds     []Round           `json:"rounds"`
	Champion   string            `json:"champion"`
}

// TeamsInRound lists the teams that played round i, pairing order, both sides of each
// matchup. Out-of-range rounds return nil.
func (c ConferenceBracket) TeamsInRound(i int) []string {
	if i < 0 || i >= len(c.Rounds) {
		return nil
	}
	out := make([]string, 0, 2*len(c.Rounds[i]))
	for _, m := range c.Rounds[i] {
		out = append(out, m.TeamA, m.TeamB)
	}
	return out
}

// Participants lists every team in the conference bracket.
func (c ConferenceBracket) Participants() []string {
	return c.TeamsInRound(0)
}

// Bracket is the full playoff result.
type Bracket struct {
	East     ConferenceBracket `json:"east"`
	West     ConferenceBracket `json:"west"`
	Final    Matchup           `json:"final"`
	Champion string            `json:"champion"`
}

// Matchups returns every series, East rounds, then West rounds, then the final.
func (b Bracket) Matchups() []Matchup {
	var out []Matchup
	for _, c := range []ConferenceBracket{b.East, b.West} {
		for _, r := range c.Rounds {
			out = append(out, r...)
		}
	}
	return append(out, b.Final)
}

// Contains reports whether team made the playoff field.
func (b Bracket) Contains(team string) bool {
	for _, c := range []ConferenceBracket{b.East, b.West} {
		for _, n := range c.Seeds {
			if league.SameTeam(n, team) {
				return true
			}
		}
	}
	return false
}

// PathOf returns every series team played, in order.
func (b Bracket) PathOf(team string) []Matchup {
	var out []Matchup
	for _, m := range b.Matchups() {
		if m.Involves(team) {
			out = append(out, m)
		}
	}
	return out
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateSeeds checks both playoff fields without playing anything.
func ValidateSeeds(east, west []string) error {
	seen := make(map[string]string, len(east)+len(west))
	for _, side := range []struct {
		field string
		seeds []string
	}{{"east", east}, {"west", west}} {
		if !isPowerOfTwo(len(side.seeds)) {
			return invalid(side.field, ErrInvalidSeedCount, "got %d, need a power of two", len(side.seeds))
		}
		for _, n := range side.seeds {
			key := league.NormalizeName(n)
			if prev, ok := seen[key]; ok {
				return invalid(side.field, ErrDuplicateSeed, "%q already seeded in %s", n, prev)
			}
			seen[key] = side.field
		}
	}
	return nil
}

// SimulatePlayoffs resolves both conference brackets, East first, then the final between
// the two champions. Seeds are ordered strongest first. Input is validated before any
// series is played.
func (e *Engine) SimulatePlayoffs(east, west []string) (Bracket, error) {
	if err := ValidateSeeds(east, west); err != nil {
		return Bracket{}, err
	}
	if !validBestOf(e.bestOf) {
		return Bracket{}, invalid("bestOf", ErrInvalidBestOf, "got %d, need a positive odd number", e.bestOf)
	}

	eastBracket := e.playConference(league.East, east)
	westBracket := e.playConference(league.West, west)

	final := e.playSeries(eastBracket.Champion, westBracket.Champion, e.bestOf)
	final.SeedA = seedIndex(east, final.TeamA)
	final.SeedB = seedIndex(west, final.TeamB)

	return Bracket{
		East:     eastBracket,
		West:     westBracket,
		Final:    final,
		Champion: final.Winner,
	}, nil
}

func (e *Engine) playConference(conf league.Conference, seeds []string) ConferenceBracket {
	out := ConferenceBracket{
		Conference: conf,
		Seeds:      append([]string(nil), seeds...),
	}
	current := out.Seeds
	for len(current) > 1 {
		round := e.playRound(current, seeds)
		out.Rounds = append(out.Rounds, round)
		current = round.Winners()
	}
	out.Champion = current[0]
	return out
}

// playRound pairs position i with position k-1-i.
func (e *Engine) playRound(teams, seeds []string) Round {
	k := len(teams)
	round := make(Round, 0, k/2)
	for i := 0; i < k/2; i++ {
		m := e.playSeries(teams[i], teams[k-1-i], e.bestOf)
		m.SeedA = seedIndex(seeds, m.TeamA)
		m.SeedB = seedIndex(seeds, m.TeamB)
		round = append(round, m)
	}
	return round
}

func seedIndex(seeds []string, team string) int {
	for i, n := range seeds {
		if n == team {
			return i + 1
		}
	}
	return 0
}

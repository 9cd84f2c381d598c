package sim

import (
	"fmt"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// PointsPerWin is awarded to the winner of every regular-season game.
const PointsPerWin = 3

// Record is a team's regular-season line.
type Record struct {
	Team       string            `json:"name"`
	Conference league.Conference `json:"conference"`
	Wins       int               `json:"wins"`
	Losses     int               `json:"losses"`
	Points     int               `json:"points"`
}

// Played returns the number of games in the record.
func (r Record) Played() int {
	return r.Wins + r.Losses
}

// Records maps team names to their final regular-season line.
type Records map[string]Record

// TotalWins sums wins across all teams, which equals the number of games played.
func (rs Records) TotalWins() int {
	total := 0
	for _, r := range rs {
		total += r.Wins
	}
	return total
}

// GamesPerTeam is the regular-season length for a league of n teams.
func GamesPerTeam(n int) int {
	if n < 2 {
		return 0
	}
	return 2 * (n - 1)
}

// SimulateRegularSeason plays a double round-robin between every pair of teams in l,
// regardless of conference, and returns each team's record.
func (e *Engine) SimulateRegularSeason(l league.League) (Records, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	teams := l.Names()
	tally := make(map[string]*Record, len(teams))
	for _, t := range l.Teams() {
		tally[t.Name] = &Record{Team: t.Name, Conference: t.Conference}
	}

	for leg := 0; leg < 2; leg++ {
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				a, b := teams[i], teams[j]
				winner, loser := a, b
				if e.ResolveGame(a, b) == b {
					winner, loser = b, a
				}
				tally[winner].Wins++
				tally[winner].Points += PointsPerWin
				tally[loser].Losses++
			}
		}
	}

	out := make(Records, len(tally))
	for name, r := range tally {
		out[name] = *r
	}
	return out, nil
}

// Season is the finalized regular season plus the playoff field it produced.
type Season struct {
	League    league.League `json:"league"`
	Records   Records       `json:"-"`
	Standings Standings     `json:"standings"`
	EastSeeds []string      `json:"eastSeeds"`
	WestSeeds []string      `json:"westSeeds"`
}

// Seeds returns the playoff field of one conference.
func (s Season) Seeds(conf league.Conference) []string {
	switch conf {
	case league.East:
		return s.EastSeeds
	case league.West:
		return s.WestSeeds
	default:
		return nil
	}
}

// SeedOf returns a team's conference seed (1-based) and conference, or 0 when the team
// missed the playoffs. Names match loosely.
func (s Season) SeedOf(team string) (int, league.Conference) {
	for _, conf := range []league.Conference{league.East, league.West} {
		for i, n := range s.Seeds(conf) {
			if league.SameTeam(n, team) {
				return i + 1, conf
			}
		}
	}
	return 0, ""
}

// SimulateSeason runs the regular season and takes the top playoffTeams of each
// conference as the playoff field.
func (e *Engine) SimulateSeason(l league.League, playoffTeams int) (Season, error) {
	if !isPowerOfTwo(playoffTeams) {
		return Season{}, invalid("playoffTeams", ErrInvalidSeedCount, "got %d, need a power of two", playoffTeams)
	}
	for _, conf := range []league.Conference{league.East, league.West} {
		if n := len(l.Roster(conf)); n < playoffTeams {
			return Season{}, invalid(string(conf), ErrInvalidSeedCount, "conference has %d teams, playoffs need %d", n, playoffTeams)
		}
	}

	records, err := e.SimulateRegularSeason(l)
	if err != nil {
		return Season{}, fmt.Errorf("regular season: %w", err)
	}
	standings := BuildStandings(records)
	return Season{
		League:    l,
		Records:   records,
		Standings: standings,
		EastSeeds: standings.Seeds(league.East, playoffTeams),
		WestSeeds: standings.Seeds(league.West, playoffTeams),
	}, nil
}

// Run plays a full season and its playoffs.
func (e *Engine) Run(l league.League, playoffTeams int) (Season, Bracket, error) {
	season, err := e.SimulateSeason(l, playoffTeams)
	if err != nil {
		return Season{}, Bracket{}, err
	}
	bracket, err := e.SimulatePlayoffs(season.EastSeeds, season.WestSeeds)
	if err != nil {
		return Season{}, Bracket{}, fmt.Errorf("playoffs: %w", err)
	}
	return season, bracket, nil
}

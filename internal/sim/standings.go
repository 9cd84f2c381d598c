package sim

import (
	"sort"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// StandingsEntry is one row of the standings table.
type StandingsEntry = Record

// Standings is ordered by points descending, then name ascending.
type Standings []StandingsEntry

// BuildStandings ranks records. The input map is never modified.
func BuildStandings(records Records) Standings {
	out := make(Standings, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// Conference returns the rows of one conference, keeping league order.
func (s Standings) Conference(conf league.Conference) Standings {
	out := make(Standings, 0, len(s)/2)
	for _, r := range s {
		if r.Conference == conf {
			out = append(out, r)
		}
	}
	return out
}

// Seeds returns the names of the top n teams in a conference. Fewer are returned when
// the conference is smaller than n.
func (s Standings) Seeds(conf league.Conference, n int) []string {
	rows := s.Conference(conf)
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]string, 0, n)
	for _, r := range rows[:n] {
		out = append(out, r.Team)
	}
	return out
}

// Find returns the row for team, matched loosely.
func (s Standings) Find(team string) (StandingsEntry, bool) {
	for _, r := range s {
		if league.SameTeam(r.Team, team) {
			return r, true
		}
	}
	return StandingsEntry{}, false
}

package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// FakeLeague generates a league of perConference teams per side with made-up names and
// tiers. The same seed always yields the same league.
func FakeLeague(seed uint64, perConference int) league.League {
	faker := gofakeit.New(seed)
	tiers := []league.Tier{league.TierA, league.TierB, league.TierC, league.TierD}

	seen := make(map[string]bool, 2*perConference)
	name := func() string {
		for {
			n := fmt.Sprintf("%s %s", faker.City(), faker.Animal())
			if !seen[league.NormalizeName(n)] {
				seen[league.NormalizeName(n)] = true
				return n
			}
		}
	}

	l := league.League{Tiers: league.TierTable{}}
	for i := 0; i < perConference; i++ {
		l.East = append(l.East, name())
		l.West = append(l.West, name())
	}
	for _, team := range l.Names() {
		tier := tiers[faker.Number(0, len(tiers)-1)]
		l.Tiers[tier] = append(l.Tiers[tier], team)
	}
	return l
}

// LeagueYAML is a small league file for file-provider and CLI tests.
const LeagueYAML = `east: [North Pikes, East Gulls]
west: [West Owls, South Rays]
tiers:
  A: [North Pikes]
  D: [South Rays]
`

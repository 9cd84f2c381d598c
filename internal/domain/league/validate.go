package league

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLeague is returned when a league declaration cannot be simulated.
var ErrInvalidLeague = errors.New("invalid league")

// Validate checks that both conferences have teams, names are non-empty, and no team
// appears twice across the league. Names differing only in case or spacing count as the same team.
func (l League) Validate() error {
	if len(l.East) == 0 || len(l.West) == 0 {
		return fmt.Errorf("%w: both conferences need at least one team (east=%d, west=%d)", ErrInvalidLeague, len(l.East), len(l.West))
	}
	seen := make(map[string]Conference, l.Size())
	check := func(conf Conference, names []string) error {
		for i, n := range names {
			if strings.TrimSpace(n) == "" {
				return fmt.Errorf("%w: empty team name at %s[%d]", ErrInvalidLeague, conf, i)
			}
			key := NormalizeName(n)
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("%w: %q listed in %s and %s", ErrInvalidLeague, n, prev, conf)
			}
			seen[key] = conf
		}
		return nil
	}
	if err := check(East, l.East); err != nil {
		return err
	}
	if err := check(West, l.West); err != nil {
		return err
	}
	for tier := range l.Tiers {
		if !tier.Valid() {
			return fmt.Errorf("%w: unknown tier %q", ErrInvalidLeague, tier)
		}
	}
	return nil
}

package betting

import (
	"errors"
	"fmt"
	"math"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

var (
	// ErrInvalidStake is returned for stakes that are not positive finite amounts.
	ErrInvalidStake = errors.New("stake must be positive")
	// ErrTeamNotInField is returned when backing a team that did not make the playoffs.
	ErrTeamNotInField = errors.New("team not in playoff field")
)

// Field is the set of seeded teams a bet can be placed on.
type Field interface {
	SeedOf(team string) (int, league.Conference)
	Seeds(conf league.Conference) []string
}

// Bet is a stake on one team to win the championship. Odds are fixed when it is placed.
type Bet struct {
	Team       string            `json:"team"`
	Conference league.Conference `json:"conference"`
	Seed       int               `json:"seed"`
	Stake      float64           `json:"stake"`
	Odds       float64           `json:"odds"`
	Percent    float64           `json:"impliedPercent"`
}

// Outcome is a settled bet.
type Outcome struct {
	Champion string  `json:"champion"`
	Won      bool    `json:"won"`
	Payout   float64 `json:"payout"`
	Net      float64 `json:"net"`
}

// Place validates and prices a bet on team. The team name may differ in case or spacing
// from the seeded name; the bet records the seeded name.
func Place(field Field, c *league.Classifier, team string, stake float64) (Bet, error) {
	if !(stake > 0) || math.IsInf(stake, 0) {
		return Bet{}, fmt.Errorf("%w: got %.2f", ErrInvalidStake, stake)
	}
	seed, conf := field.SeedOf(team)
	if seed == 0 {
		return Bet{}, fmt.Errorf("%w: %q", ErrTeamNotInField, team)
	}
	name := team
	if list := field.Seeds(conf); seed <= len(list) {
		name = list[seed-1]
	}
	odds := sim.Odds(c, name, seed)
	return Bet{
		Team:       name,
		Conference: conf,
		Seed:       seed,
		Stake:      stake,
		Odds:       odds,
		Percent:    sim.RoundCents(sim.ImpliedPercent(odds)),
	}, nil
}

// Settle pays stake x odds, rounded to cents, when the backed team is champion.
func (b Bet) Settle(champion string) Outcome {
	out := Outcome{Champion: champion}
	if league.SameTeam(b.Team, champion) {
		out.Won = true
		out.Payout = sim.RoundCents(b.Stake * b.Odds)
		out.Net = sim.RoundCents(out.Payout - b.Stake)
		return out
	}
	out.Net = -b.Stake
	return out
}

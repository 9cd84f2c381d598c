package sim

import (
	"math"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

var baseOdds = map[league.Tier]float64{
	league.TierA: 2.0,
	league.TierB: 3.5,
	league.TierC: 6.0,
	league.TierD: 9.0,
}

// SeedMultiplier scales base odds for lower seeds.
func SeedMultiplier(seed int) float64 {
	switch {
	case seed >= 5:
		return 1.5
	case seed >= 3:
		return 1.2
	default:
		return 1.0
	}
}

// Odds returns the payout multiplier for backing team at seed to win the title.
// Unclassified teams are priced as the default tier.
func Odds(c *league.Classifier, team string, seed int) float64 {
	base, ok := baseOdds[c.TierOf(team)]
	if !ok {
		base = baseOdds[league.DefaultTier]
	}
	return RoundCents(base * SeedMultiplier(seed))
}

// ImpliedPercent converts a payout multiplier to a win percentage. Non-positive odds give 0.
func ImpliedPercent(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 100 / odds
}

// RoundCents rounds to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

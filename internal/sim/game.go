package sim

import "github.com/preston-bernstein/nha-sim-service/internal/domain/league"

// WinProbability is the chance that a beats b: strength(a) / (strength(a) + strength(b)).
func WinProbability(c *league.Classifier, a, b string) float64 {
	sa, sb := c.Strength(a), c.Strength(b)
	return float64(sa) / float64(sa+sb)
}

// ResolveGame plays one game and returns the winner, always a or b.
func (e *Engine) ResolveGame(a, b string) string {
	if e.rng.Float64() < WinProbability(e.classifier, a, b) {
		return a
	}
	return b
}

package sim

// WinsNeeded returns the number of wins that clinches a best-of-n series.
func WinsNeeded(bestOf int) int {
	return bestOf/2 + 1
}

func validBestOf(n int) bool {
	return n > 0 && n%2 == 1
}

// ResolveSeries plays games between a and b until one reaches a majority of bestOf.
func (e *Engine) ResolveSeries(a, b string, bestOf int) (Matchup, error) {
	if !validBestOf(bestOf) {
		return Matchup{}, invalid("bestOf", ErrInvalidBestOf, "got %d, need a positive odd number", bestOf)
	}
	return e.playSeries(a, b, bestOf), nil
}

// playSeries assumes bestOf is valid. Each game adds exactly one win, so the loop
// ends after at most bestOf games.
func (e *Engine) playSeries(a, b string, bestOf int) Matchup {
	need := WinsNeeded(bestOf)
	m := Matchup{TeamA: a, TeamB: b}
	for m.WinsA < need && m.WinsB < need {
		if e.ResolveGame(a, b) == a {
			m.WinsA++
		} else {
			m.WinsB++
		}
	}
	if m.WinsA > m.WinsB {
		m.Winner = a
	} else {
		m.Winner = b
	}
	return m
}

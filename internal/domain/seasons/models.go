package seasons

import (
	"time"

	"github.com/preston-bernstein/nha-sim-service/internal/betting"
	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
)

// Session is one simulated season and everything done with it since.
// Bracket and Outcome stay nil until the playoffs have been played.
type Session struct {
	ID        string
	Seed      uint64
	CreatedAt time.Time
	Season    sim.Season
	Bet       *betting.Bet
	Bracket   *sim.Bracket
	Outcome   *betting.Outcome
}

// PlayoffsComplete reports whether the session's playoffs have been simulated.
func (s Session) PlayoffsComplete() bool {
	return s.Bracket != nil
}

// SeedRow is a playoff seed with the odds a bet on it would get.
type SeedRow struct {
	Team           string      `json:"team"`
	Tier           league.Tier `json:"tier"`
	Seed           int         `json:"seed"`
	Odds           float64     `json:"odds"`
	ImpliedPercent float64     `json:"impliedPercent"`
}

// SessionView is the payload returned by /v1/seasons/{id}.
type SessionView struct {
	ID        string           `json:"id"`
	Seed      uint64           `json:"seed"`
	CreatedAt string           `json:"createdAt"`
	Standings sim.Standings    `json:"standings"`
	East      []SeedRow        `json:"east"`
	West      []SeedRow        `json:"west"`
	Bet       *betting.Bet     `json:"bet,omitempty"`
	Bracket   *sim.Bracket     `json:"bracket,omitempty"`
	Outcome   *betting.Outcome `json:"outcome,omitempty"`
}

// StandingsResponse is the payload returned by /v1/seasons/{id}/standings.
type StandingsResponse struct {
	Conference league.Conference `json:"conference,omitempty"`
	Standings  sim.Standings     `json:"standings"`
}

// PlayoffsResponse is the payload returned when playoffs are simulated.
type PlayoffsResponse struct {
	Bracket sim.Bracket      `json:"bracket"`
	Outcome *betting.Outcome `json:"outcome,omitempty"`
}

// OddsQuote is the payload returned by /v1/odds.
type OddsQuote struct {
	Team           string      `json:"team"`
	Tier           league.Tier `json:"tier"`
	Seed           int         `json:"seed"`
	Odds           float64     `json:"odds"`
	ImpliedPercent float64     `json:"impliedPercent"`
}

// Quote prices a bet on team at seed.
func Quote(c *league.Classifier, team string, seed int) OddsQuote {
	odds := sim.Odds(c, team, seed)
	return OddsQuote{
		Team:           team,
		Tier:           c.TierOf(team),
		Seed:           seed,
		Odds:           odds,
		ImpliedPercent: sim.RoundCents(sim.ImpliedPercent(odds)),
	}
}

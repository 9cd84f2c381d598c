package sim

import (
	"fmt"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

// fixedSource always returns the same draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// seqSource replays draws in order, wrapping around.
type seqSource struct {
	draws []float64
	i     int
}

func (s *seqSource) Float64() float64 {
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v
}

// favoriteWins makes team A win every game.
const favoriteWins = fixedSource(0)

// underdogWins makes team B win every game.
const underdogWins = fixedSource(0.9999999)

func seedList(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return out
}

func sixteenTeamLeague() league.League {
	return league.League{
		East: []string{
			"New England Captains", "New York Skies", "Toronto Speedsters", "Detroit Veterans",
			"Charlotte Vipers", "Chicago Phantoms", "Montreal Franks", "Pennsylvania Dutchman",
		},
		West: []string{
			"Salt Lake Spices", "Los Angeles Cheetahs", "Dallas Hunchbacks", "Houston 29ers",
			"Oregon Tellers", "Denver Titans", "Phoenix Rosebuds", "Omaha Crows",
		},
	}
}

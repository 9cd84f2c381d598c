package sim

import (
	"math"
	"testing"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

func TestOdds(t *testing.T) {
	c := league.DefaultClassifier()
	cases := []struct {
		team string
		seed int
		want float64
	}{
		{"Salt Lake Spices", 1, 2.0},
		{"Salt Lake Spices", 2, 2.0},
		{"Salt Lake Spices", 3, 2.4},
		{"Houston 29ers", 4, 4.2},
		{"Charlotte Vipers", 5, 9.0},
		{"Montreal Franks", 6, 13.5},
		{"Montreal Franks", 8, 13.5},
		{"Expansion Club", 1, 6.0},
		{"Expansion Club", 0, 6.0},
	}
	for _, tc := range cases {
		if got := Odds(c, tc.team, tc.seed); got != tc.want {
			t.Fatalf("Odds(%q, %d): expected %.2f, got %.4f", tc.team, tc.seed, tc.want, got)
		}
	}
}

func TestImpliedPercent(t *testing.T) {
	if got := ImpliedPercent(2.0); got != 50 {
		t.Fatalf("expected 50%%, got %.2f", got)
	}
	if got := ImpliedPercent(13.5); math.Abs(got-7.407) > 0.001 {
		t.Fatalf("expected ~7.41%%, got %.4f", got)
	}
	for _, odds := range []float64{0, -1} {
		if got := ImpliedPercent(odds); got != 0 {
			t.Fatalf("expected 0 for odds %.1f, got %.2f", odds, got)
		}
	}
}

func TestRoundCents(t *testing.T) {
	cases := map[float64]float64{4.199999: 4.2, 13.5: 13.5, 10: 10, 0.004: 0, 7.4074: 7.41}
	for in, want := range cases {
		if got := RoundCents(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("RoundCents(%v): expected %v, got %v", in, want, got)
		}
	}
}

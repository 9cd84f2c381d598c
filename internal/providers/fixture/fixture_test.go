package fixture

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

func TestFetchLeagueReturnsDefault(t *testing.T) {
	l, err := New().FetchLeague(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.East) != 12 || len(l.West) != 12 {
		t.Fatalf("expected 12 teams per conference, got %d/%d", len(l.East), len(l.West))
	}
	if l.Classifier().TierOf("Salt Lake Spices") != league.TierA {
		t.Fatalf("expected default tiers to travel with the fixture league")
	}
}

func TestFetchLeagueReturnsCopies(t *testing.T) {
	p := New()
	first, _ := p.FetchLeague(context.Background())
	first.East[0] = "Mutated"

	second, _ := p.FetchLeague(context.Background())
	if second.East[0] == "Mutated" {
		t.Fatalf("expected each fetch to return an independent league")
	}
}

func TestFetchLeagueHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchLeague(ctx); err == nil {
		t.Fatalf("expected cancelled context to fail")
	}
}

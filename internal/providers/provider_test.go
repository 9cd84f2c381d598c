package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
)

type stubProvider struct {
	league league.League
	err    error
}

func (s *stubProvider) FetchLeague(ctx context.Context) (league.League, error) {
	_ = ctx
	return s.league, s.err
}

func TestLeagueProviderInterfaceImplemented(t *testing.T) {
	var _ LeagueProvider = (*stubProvider)(nil)
}

func TestValidatingProviderPassesValidLeague(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewValidatingProvider(&stubProvider{league: league.Default()}, logger, "fixture")

	l, err := p.FetchLeague(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Size() != 24 {
		t.Fatalf("expected 24 teams, got %d", l.Size())
	}
	if out := buf.String(); !strings.Contains(out, "league loaded") || !strings.Contains(out, "provider=fixture") {
		t.Fatalf("expected load log with provider, got %q", out)
	}
}

func TestValidatingProviderRejectsInvalidLeague(t *testing.T) {
	p := NewValidatingProvider(&stubProvider{league: league.League{East: []string{"A"}}}, nil, "file")

	_, err := p.FetchLeague(context.Background())
	if !errors.Is(err, league.ErrInvalidLeague) {
		t.Fatalf("expected ErrInvalidLeague, got %v", err)
	}
	if le, ok := AsLoadError(err); !ok || le.Provider != "file" {
		t.Fatalf("expected LoadError from file provider, got %v", err)
	}
}

func TestValidatingProviderPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("boom")
	p := NewValidatingProvider(&stubProvider{err: boom}, nil, "file")
	_, err := p.FetchLeague(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if le, ok := AsLoadError(err); !ok || le.Provider != "file" {
		t.Fatalf("expected fetch error wrapped in LoadError, got %v", err)
	}
}

package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/nha-sim-service/internal/config"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/file"
	"github.com/preston-bernstein/nha-sim-service/internal/providers/fixture"
	"github.com/preston-bernstein/nha-sim-service/internal/testutil"
)

func TestSelectProvider(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.Config
		wantErr bool
		isFile  bool
	}{
		{name: "default", cfg: config.Config{}},
		{name: "fixture", cfg: config.Config{LeagueProvider: "Fixture"}},
		{name: "file", cfg: config.Config{LeagueProvider: "file", LeagueFile: "league.yaml"}, isFile: true},
		{name: "file without path", cfg: config.Config{LeagueProvider: "file"}},
		{name: "unknown", cfg: config.Config{LeagueProvider: "espn"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := selectProvider(tc.cfg, nil)
			_, gotFile := p.(*file.Provider)
			_, gotFixture := p.(*fixture.Provider)
			if gotFile != tc.isFile || gotFixture == tc.isFile {
				t.Fatalf("unexpected provider %T", p)
			}
		})
	}
}

func TestProviderFactoryLoadsLeagueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	if err := os.WriteFile(path, []byte(testutil.LeagueYAML), 0o600); err != nil {
		t.Fatalf("write league: %v", err)
	}

	prov := newProviderFactory(nil).build(config.Config{LeagueProvider: "file", LeagueFile: path})
	l, err := prov.FetchLeague(context.Background())
	if err != nil {
		t.Fatalf("expected league, got %v", err)
	}
	if len(l.East) == 0 || len(l.West) == 0 {
		t.Fatalf("expected both conferences, got %+v", l)
	}
}

func TestProviderFactoryWrapsErrorsWithProviderName(t *testing.T) {
	prov := newProviderFactory(nil).build(config.Config{LeagueProvider: "file", LeagueFile: filepath.Join(t.TempDir(), "missing.yaml")})
	_, err := prov.FetchLeague(context.Background())
	loadErr, ok := providers.AsLoadError(err)
	if !ok {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Provider != "file" {
		t.Fatalf("expected provider name file, got %s", loadErr.Provider)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("FILE", nil); got != "file" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

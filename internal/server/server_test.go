package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nha-sim-service/internal/config"
	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	domainseasons "github.com/preston-bernstein/nha-sim-service/internal/domain/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port: "0",
		Simulation: config.SimulationConfig{
			BestOf:       7,
			PlayoffTeams: 8,
			MaxSessions:  10,
			Workers:      2,
			MaxRuns:      100,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesHealthAndSeasons(t *testing.T) {
	provider := &testutil.StaticProvider{League: league.Default()}
	srv := newServerWithProvider(testConfig(), nil, provider)
	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, httptest.NewRequest(http.MethodPost, "/v1/seasons", strings.NewReader(`{"seed":42}`)))
	if createRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 from POST /v1/seasons, got %d: %s", createRec.Code, createRec.Body.String())
	}

	var view domainseasons.SessionView
	if err := json.NewDecoder(createRec.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode season response: %v", err)
	}
	if view.Seed != 42 || view.ID == "" {
		t.Fatalf("unexpected session view %+v", view)
	}
	if len(view.Standings) != 24 {
		t.Fatalf("expected 24 standings rows, got %d", len(view.Standings))
	}
	if srv.store.Len() != 1 {
		t.Fatalf("expected session stored, got %d", srv.store.Len())
	}
	if provider.Calls() == 0 {
		t.Fatalf("expected provider to be consulted")
	}

	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, "/v1/seasons/"+view.ID+"/standings", nil))
	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from standings, got %d", getRec.Code)
	}
}

func TestServerReportsProviderErrorsAsUnavailable(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, testutil.ErrProvider{Err: errors.New("boom")})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/seasons", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when the league cannot load, got %d", rec.Code)
	}

	readyRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(readyRec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if readyRec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from /ready, got %d", readyRec.Code)
	}
}

func TestServerRejectsInvalidLeague(t *testing.T) {
	bad := league.League{East: []string{"Only One"}}
	srv := newServerWithProvider(testConfig(), nil, &testutil.StaticProvider{League: bad})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/league", nil))
	if rec.Code == http.StatusOK {
		t.Fatalf("expected invalid league to be rejected")
	}
}

func TestServerMountsAdminWhenTokenSet(t *testing.T) {
	orig := adminToken
	defer func() { adminToken = orig }()
	adminToken = func() string { return "secret" }

	srv := newServerWithProvider(testConfig(), nil, nil)

	unauth := httptest.NewRecorder()
	srv.Handler().ServeHTTP(unauth, httptest.NewRequest(http.MethodGet, "/admin/sessions", nil))
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", unauth.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/sessions", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}

func TestServerOmitsAdminWithoutToken(t *testing.T) {
	orig := adminToken
	defer func() { adminToken = orig }()
	adminToken = func() string { return "" }

	srv := newServerWithProvider(testConfig(), nil, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/sessions", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without admin token, got %d", rec.Code)
	}
}

func TestServerAppliesRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
	srv := newServerWithProvider(cfg, nil, nil)

	first := httptest.NewRecorder()
	srv.Handler().ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/v1/seasons", nil))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	srv.Handler().ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/v1/seasons", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second request, got %d", second.Code)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.LeagueProvider = "fixture"
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.seasons == nil || srv.forecast == nil {
		t.Fatalf("expected services to be wired")
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopped := false

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls())
	}
	if metricsSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected metrics Shutdown to be called once, got %d", metricsSrv.ShutdownCalls())
	}
	if !stopped {
		t.Fatalf("expected metrics stop to run")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{Unblock: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls())
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
	if !strings.Contains(buf.String(), "graceful shutdown failed") {
		t.Fatalf("expected shutdown failure logged, got %q", buf.String())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")})

	var once sync.Once
	stopCalled := make(chan struct{})
	srv.startServer(func() { once.Do(func() { close(stopCalled) }) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls())
	}
}

func TestWriteTimeoutCoversRequestTimeout(t *testing.T) {
	if got := writeTimeoutFor(30 * time.Second); got <= 30*time.Second {
		t.Fatalf("expected write timeout beyond request timeout, got %s", got)
	}
	if got := writeTimeoutFor(0); got != minRequestTO+writeGrace {
		t.Fatalf("expected floor for zero timeout, got %s", got)
	}
}

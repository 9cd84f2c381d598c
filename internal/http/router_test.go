package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nha-sim-service/internal/http/handlers"
	"github.com/preston-bernstein/nha-sim-service/internal/http/middleware"
	"github.com/preston-bernstein/nha-sim-service/internal/testutil"
)

func newTestRouter(opts RouterOptions) http.Handler {
	h := handlers.NewHandler(testutil.NewSeasonService(nil), testutil.NewForecastService(nil), nil)
	return NewRouter(h, opts)
}

func TestRouterSeasonFlow(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	router := newTestRouter(RouterOptions{Logger: logger})

	rr := testutil.Serve(router, http.MethodPost, "/v1/seasons", strings.NewReader(`{"seed":5}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	location := rr.Header().Get("Location")
	if !strings.HasPrefix(location, "/v1/seasons/") {
		t.Fatalf("unexpected location %q", location)
	}

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/v1/league", http.StatusOK},
		{http.MethodGet, "/v1/odds?team=Omaha+Crows&seed=2", http.StatusOK},
		{http.MethodGet, location, http.StatusOK},
		{http.MethodGet, location + "/standings?conference=East", http.StatusOK},
		{http.MethodGet, location + "/standings.xlsx", http.StatusOK},
		{http.MethodGet, location + "/standings.png", http.StatusOK},
		{http.MethodGet, location + "/bracket", http.StatusConflict},
		{http.MethodPost, location + "/playoffs", http.StatusOK},
		{http.MethodGet, location + "/bracket?highlight=omaha+crows", http.StatusOK},
		{http.MethodGet, "/v1/seasons/does-not-exist", http.StatusNotFound},
	}
	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.status {
			t.Fatalf("%s %s expected status %d, got %d (%s)", tc.method, tc.path, tc.status, rr.Code, rr.Body.String())
		}
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	req.Header.Set("X-Request-ID", "trace-1")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "not found" || body["requestId"] != "trace-1" {
		t.Fatalf("unexpected 404 body %+v", body)
	}
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	router := newTestRouter(RouterOptions{})
	rr := testutil.Serve(router, http.MethodDelete, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterRateLimitsSimulations(t *testing.T) {
	router := newTestRouter(RouterOptions{Limiter: middleware.NewRateLimiter(0.001, 1)})

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodPost, "/v1/seasons", nil), http.StatusCreated)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodPost, "/v1/seasons", nil), http.StatusTooManyRequests)

	// Reads are not limited.
	for i := 0; i < 3; i++ {
		testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/v1/league", nil), http.StatusOK)
	}
}

func TestRouterAdminMountedOnlyWhenConfigured(t *testing.T) {
	router := newTestRouter(RouterOptions{})
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/admin/sessions", nil), http.StatusNotFound)

	admin := handlers.NewAdminHandler(testutil.NewSeasonService(nil), "secret", nil)
	router = newTestRouter(RouterOptions{Admin: admin})
	req := httptest.NewRequest(http.MethodGet, "/admin/sessions", nil)
	req.Header.Set("Authorization", "Bearer secret")
	testutil.AssertStatus(t, testutil.ServeRequest(router, req), http.StatusOK)
}

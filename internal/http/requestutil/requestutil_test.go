package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected generated request id")
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG fails")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	tests := []struct {
		name      string
		remote    string
		forwarded string
		want      string
	}{
		{name: "first forwarded hop", remote: "10.0.0.1:80", forwarded: "1.2.3.4, 5.6.7.8", want: "1.2.3.4"},
		{name: "forwarded with port", remote: "10.0.0.1:80", forwarded: "1.2.3.4:5555", want: "1.2.3.4"},
		{name: "remote addr strips port", remote: "9.9.9.9:1234", want: "9.9.9.9"},
		{name: "remote addr without port", remote: "9.9.9.9", want: "9.9.9.9"},
		{name: "ipv6 remote", remote: "[::1]:4000", want: "::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := ClientIP(req); got != tt.want {
				t.Fatalf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

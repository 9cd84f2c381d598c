package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestFromContextReturnsStoredLogger(t *testing.T) {
	stored := slog.Default().With("scope", "request")
	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, nil); got != stored {
		t.Fatalf("expected stored logger")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
	if got := WithLogger(context.Background(), nil); got.Value(loggerKey{}) != nil {
		t.Fatalf("expected nil logger not to be stored")
	}
}

package services_test

import (
	"context"
	"testing"

	"rgadiag/internal/services"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "abc")
	if id, ok := services.RunIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("RunIDFromContext = %q %v", id, ok)
	}
	if _, ok := services.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	if services.WithRunID(ctx, "") != ctx {
		t.Fatal("empty id must return the same context")
	}
}

func TestCommandRoundTrip(t *testing.T) {
	ctx := services.WithCommand(context.Background(), "diagnose")
	if cmd, ok := services.CommandFromContext(ctx); !ok || cmd != "diagnose" {
		t.Fatalf("CommandFromContext = %q %v", cmd, ok)
	}
}

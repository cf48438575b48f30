package trace

import (
	"context"
	"testing"
)

func TestGenerateIDs(t *testing.T) {
	if got := len(GenerateID()); got != 32 {
		t.Fatalf("expected 32 hex chars, got %d", got)
	}
	if got := len(GenerateSpanID()); got != 16 {
		t.Fatalf("expected 16 hex chars, got %d", got)
	}
	if GenerateID() == GenerateID() {
		t.Fatalf("expected distinct ids")
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithInfo(context.Background(), Info{RequestID: "req-1", SpanID: "span-1"})

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	if got := SpanIDFromContext(ctx); got != "span-1" {
		t.Fatalf("expected span-1, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}

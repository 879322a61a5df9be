package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	id, ok := GetUserIDFromContext(ctx)
	if !ok || id != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", id, ok)
	}

	_, ok = GetUserIDFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}

	// wrong type under the key
	ctx = context.WithValue(context.Background(), UserIDCtxKey, "42")
	_, ok = GetUserIDFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for mistyped value")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Fatalf("got (%q, %v), want (trace-1, true)", traceID, ok)
	}
}

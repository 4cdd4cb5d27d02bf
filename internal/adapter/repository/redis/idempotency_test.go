package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyFirstRequestClaimsKey(t *testing.T) {
	store := NewIdempotencyStore(newTestRedisClient(t))
	ctx := context.Background()

	exists, existing, err := store.CheckAndSet(ctx, "req-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatalf("first request must not see an existing key, got %q", existing)
	}
}

func TestIdempotencyRetrySeesStoredResponse(t *testing.T) {
	store := NewIdempotencyStore(newTestRedisClient(t))
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "req-1", nil, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	response := []byte(`{"id":"entry-1"}`)
	if err := store.Update(ctx, "req-1", response, time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	exists, existing, err := store.CheckAndSet(ctx, "req-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatalf("retry must see the key")
	}
	if string(existing) != string(response) {
		t.Fatalf("retry must replay the stored response, got %q", existing)
	}
}

func TestIdempotencyDirectResponseStore(t *testing.T) {
	store := NewIdempotencyStore(newTestRedisClient(t))
	ctx := context.Background()

	response := []byte(`{"id":"entry-1"}`)
	exists, _, err := store.CheckAndSet(ctx, "req-1", response, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatalf("fresh key must not report existing")
	}

	exists, existing, err := store.CheckAndSet(ctx, "req-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists || string(existing) != string(response) {
		t.Fatalf("expected stored response, got exists=%v value=%q", exists, existing)
	}
}

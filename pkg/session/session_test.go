package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	sess := New(2, "ATTACK AT DAWN", DefaultTTL)

	if sess.ID == "" {
		t.Error("New() should assign a non-empty ID")
	}
	if sess.Level != 2 {
		t.Errorf("Level = %d, want 2", sess.Level)
	}
	if sess.Plaintext != "ATTACK AT DAWN" {
		t.Errorf("Plaintext = %q, want %q", sess.Plaintext, "ATTACK AT DAWN")
	}
	if sess.Pipeline == nil {
		t.Fatal("New() should create a pipeline")
	}
	if !sess.Pipeline.IsEmpty() {
		t.Error("new session pipeline should be empty")
	}
	if sess.IsExpired() {
		t.Error("fresh session should not be expired")
	}

	other := New(2, "ATTACK AT DAWN", DefaultTTL)
	if other.ID == sess.ID {
		t.Error("sessions should get unique IDs")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := New(0, "HELLO WORLD", DefaultTTL)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("Get() ID = %q, want %q", got.ID, sess.ID)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}

	// Deleting a missing session is a no-op.
	if err := store.Delete(context.Background(), "no-such-id"); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := New(0, "HELLO", -time.Minute) // already expired
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrExpired) {
		t.Errorf("Get() error = %v, want ErrExpired", err)
	}

	// Expired sessions are removed on access.
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	live := New(0, "LIVE", DefaultTTL)
	dead := New(0, "DEAD", -time.Minute)
	store.Set(ctx, live)
	store.Set(ctx, dead)

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	if store.Len() != 1 {
		t.Errorf("Len() = %d after cleanup, want 1", store.Len())
	}
	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live session should survive cleanup, got %v", err)
	}
}

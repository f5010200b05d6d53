package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/ratelimit"
)

func TestMemoryStore_CountsWithinWindow(t *testing.T) {
	s := ratelimit.NewMemoryStore()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		count, _, err := s.Take(ctx, "ip:1.2.3.4", time.Minute)
		if err != nil {
			t.Fatalf("take: %v", err)
		}
		if count != want {
			t.Fatalf("got count %d, want %d", count, want)
		}
	}
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	s := ratelimit.NewMemoryStore()
	ctx := context.Background()

	if count, _, _ := s.Take(ctx, "a", time.Minute); count != 1 {
		t.Fatalf("got count %d, want 1", count)
	}
	if count, _, _ := s.Take(ctx, "b", time.Minute); count != 1 {
		t.Fatalf("got count %d, want 1", count)
	}
	if count, _, _ := s.Take(ctx, "a", time.Minute); count != 2 {
		t.Fatalf("got count %d, want 2", count)
	}
}

func TestMemoryStore_WindowResets(t *testing.T) {
	s := ratelimit.NewMemoryStore()
	ctx := context.Background()

	if count, _, _ := s.Take(ctx, "a", 10*time.Millisecond); count != 1 {
		t.Fatal("first take should start at 1")
	}
	if count, _, _ := s.Take(ctx, "a", 10*time.Millisecond); count != 2 {
		t.Fatal("second take should count up")
	}

	time.Sleep(15 * time.Millisecond)

	if count, _, _ := s.Take(ctx, "a", 10*time.Millisecond); count != 1 {
		t.Fatal("window did not reset")
	}
}

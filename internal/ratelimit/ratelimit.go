package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store counts hits per key inside a fixed window. Take returns the count
// after this hit and how long until the window resets.
type Store interface {
	Take(ctx context.Context, key string, window time.Duration) (count int, resetIn time.Duration, err error)
}

type MemoryStore struct {
	mu      sync.Mutex
	clients map[string]*bucket
}

type bucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients: make(map[string]*bucket),
	}
}

func (s *MemoryStore) Take(_ context.Context, key string, window time.Duration) (int, time.Duration, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.clients[key]

	if !ok || now.After(b.windowEnd) {
		s.clients[key] = &bucket{
			count:     1,
			windowEnd: now.Add(window),
		}

		return 1, window, nil
	}

	b.count++

	return b.count, time.Until(b.windowEnd), nil
}

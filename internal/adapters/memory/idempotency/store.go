package idempotency

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/triply-travel/itinerary-api/internal/ports/out/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
)

// DefaultTTL is how long a recorded response can be replayed.
const DefaultTTL = 24 * time.Hour

// Store is an in-memory implementation of idempotency.Store.
// Records older than the TTL are treated as absent and dropped on the next Put.
// It is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	m   map[idempotency.Fingerprint]idempotency.Record
	clk clock.Clock
	ttl time.Duration
}

func NewStore(clk clock.Clock, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		m:   make(map[idempotency.Fingerprint]idempotency.Record),
		clk: clk,
		ttl: ttl,
	}
}

func (s *Store) Get(ctx context.Context, fp idempotency.Fingerprint) (idempotency.Record, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.m[fp]
	if !ok || s.expired(rec, s.clk.Now()) {
		return idempotency.Record{}, false, nil
	}
	rec.Body = bytes.Clone(rec.Body)
	return rec, true, nil
}

func (s *Store) Put(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clk.Now()
	for k, r := range s.m {
		if s.expired(r, now) {
			delete(s.m, k)
		}
	}
	rec.Body = bytes.Clone(rec.Body)
	s.m[fp] = rec
	return nil
}

func (s *Store) expired(rec idempotency.Record, now time.Time) bool {
	return rec.CreatedAt.Add(s.ttl).Before(now)
}

package directionscache

import (
	"context"
	"sync"
	"time"

	"github.com/triply-travel/itinerary-api/internal/ports/out/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

type entry struct {
	route     directions.Route
	expiresAt time.Time
}

// Cache is an in-process directions.Cache. Expired entries are skipped on read
// and swept on write. It is safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	store map[directions.PairKey]entry
	clk   clock.Clock
}

func NewCache(clk clock.Clock) *Cache {
	return &Cache{store: make(map[directions.PairKey]entry), clk: clk}
}

func (c *Cache) Get(ctx context.Context, k directions.PairKey) (directions.Route, bool, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[k]
	if !ok || c.clk.Now().After(e.expiresAt) {
		return directions.Route{}, false, nil
	}
	return e.route, true, nil
}

func (c *Cache) Set(ctx context.Context, k directions.PairKey, r directions.Route, ttl time.Duration) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clk.Now()
	for key, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, key)
		}
	}
	c.store[k] = entry{route: r, expiresAt: now.Add(ttl)}
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Package cached puts a pair cache in front of a directions.Provider.
package cached

import (
	"context"
	"log"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

// Provider answers from the cache when it can and stores fresh lookups.
// Cache failures are logged and never fail a lookup.
type Provider struct {
	next  directions.Provider
	cache directions.Cache
	ttl   time.Duration
}

func NewProvider(next directions.Provider, cache directions.Cache, ttl time.Duration) *Provider {
	return &Provider{next: next, cache: cache, ttl: ttl}
}

func (p *Provider) Directions(ctx context.Context, origin, destination domain.Coordinates, mode domain.TravelMode) (directions.Route, error) {
	key := directions.NewPairKey(origin, destination, mode)

	r, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Printf("directions cache get %s: %v", key, err)
	} else if ok {
		return r, nil
	}

	r, err = p.next.Directions(ctx, origin, destination, mode)
	if err != nil {
		return directions.Route{}, err
	}
	if err := p.cache.Set(ctx, key, r, p.ttl); err != nil {
		log.Printf("directions cache set %s: %v", key, err)
	}
	return r, nil
}

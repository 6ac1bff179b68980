// Package directionscache stores commute routes in Redis so that several API
// instances share one pair cache.
package directionscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

const keyPrefix = "directions:"

type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// NewClient builds a client and checks connectivity.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

type storedRoute struct {
	DistanceMeters  int               `json:"distanceMeters"`
	DurationMinutes int               `json:"durationMinutes"`
	Mode            domain.TravelMode `json:"mode"`
}

func key(k directions.PairKey) string { return keyPrefix + k.String() }

func (c *Cache) Get(ctx context.Context, k directions.PairKey) (directions.Route, bool, error) {
	val, err := c.rdb.Get(ctx, key(k)).Bytes()
	if errors.Is(err, redis.Nil) {
		return directions.Route{}, false, nil
	}
	if err != nil {
		return directions.Route{}, false, err
	}
	var s storedRoute
	if err := json.Unmarshal(val, &s); err != nil {
		return directions.Route{}, false, fmt.Errorf("decode cached route: %w", err)
	}
	return directions.Route{DistanceMeters: s.DistanceMeters, DurationMinutes: s.DurationMinutes, Mode: s.Mode}, true, nil
}

func (c *Cache) Set(ctx context.Context, k directions.PairKey, r directions.Route, ttl time.Duration) error {
	b, err := json.Marshal(storedRoute{DistanceMeters: r.DistanceMeters, DurationMinutes: r.DurationMinutes, Mode: r.Mode})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(k), b, ttl).Err()
}

package directionscache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/triply-travel/itinerary-api/internal/adapters/directions/cached"
	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) Directions(_ context.Context, _, _ domain.Coordinates, mode domain.TravelMode) (directions.Route, error) {
	p.calls++
	if p.err != nil {
		return directions.Route{}, p.err
	}
	return directions.Route{DistanceMeters: 800, DurationMinutes: 10, Mode: mode}, nil
}

func TestCache_ExpiresEntries(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(0, 0))
	c := NewCache(clk)
	k := directions.NewPairKey(domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4}, domain.TravelModeWalking)

	if err := c.Set(context.Background(), k, directions.Route{DistanceMeters: 5}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if r, ok, _ := c.Get(context.Background(), k); !ok || r.DistanceMeters != 5 {
		t.Fatalf("Get=%+v,%v", r, ok)
	}
	clk.Advance(2 * time.Minute)
	if _, ok, _ := c.Get(context.Background(), k); ok {
		t.Fatalf("entry should have expired")
	}

	other := directions.NewPairKey(domain.Coordinates{}, domain.Coordinates{Lat: 1}, domain.TravelModeWalking)
	_ = c.Set(context.Background(), other, directions.Route{}, time.Minute)
	if c.Len() != 1 {
		t.Fatalf("len=%d, want expired entry swept", c.Len())
	}
}

func TestCachedProvider_UsesCache(t *testing.T) {
	t.Parallel()

	next := &countingProvider{}
	p := cached.NewProvider(next, NewCache(clock.NewSystemClock()), time.Hour)
	a, b := domain.Coordinates{Lat: 48.85, Lng: 2.35}, domain.Coordinates{Lat: 48.86, Lng: 2.34}

	for i := 0; i < 3; i++ {
		r, err := p.Directions(context.Background(), a, b, domain.TravelModeWalking)
		if err != nil || r.DurationMinutes != 10 {
			t.Fatalf("call %d: r=%+v err=%v", i, r, err)
		}
	}
	if next.calls != 1 {
		t.Fatalf("upstream calls=%d, want 1", next.calls)
	}

	if _, err := p.Directions(context.Background(), b, a, domain.TravelModeWalking); err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("reverse direction should be a separate entry, calls=%d", next.calls)
	}
}

func TestCachedProvider_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	next := &countingProvider{err: errors.New("down")}
	c := NewCache(clock.NewSystemClock())
	p := cached.NewProvider(next, c, time.Hour)

	if _, err := p.Directions(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1}, domain.TravelModeWalking); err == nil {
		t.Fatalf("expected error")
	}
	if c.Len() != 0 {
		t.Fatalf("error was cached")
	}
}

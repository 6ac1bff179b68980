package directionscache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

func TestCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping redis integration test")
	}

	ctx := context.Background()
	rdb, err := NewClient(ctx, addr)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewCache(rdb)
	k := directions.PairKey{Mode: domain.TravelModeWalking, A: "itest-" + uuid.NewString(), B: "48.86060,2.33760"}
	t.Cleanup(func() { _ = rdb.Del(ctx, key(k)).Err() })

	if _, ok, err := c.Get(ctx, k); err != nil || ok {
		t.Fatalf("Get before Set: ok=%v err=%v", ok, err)
	}
	want := directions.Route{DistanceMeters: 3160, DurationMinutes: 40, Mode: domain.TravelModeWalking}
	if err := c.Set(ctx, k, want, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, k)
	if err != nil || !ok || got != want {
		t.Fatalf("Get=%+v ok=%v err=%v", got, ok, err)
	}
}

func TestKey_IsPrefixed(t *testing.T) {
	t.Parallel()

	k := directions.PairKey{Mode: domain.TravelModeWalking, A: "1.00000,2.00000", B: "3.00000,4.00000"}
	if got := key(k); got != "directions:WALKING:1.00000,2.00000:3.00000,4.00000" {
		t.Fatalf("key=%q", got)
	}
}

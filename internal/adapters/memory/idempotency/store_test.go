package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/triply-travel/itinerary-api/internal/platform/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
)

func TestStore_RecordsExpireAfterTTL(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(1_000, 0))
	s := NewStore(clk, time.Hour)
	fp := idempotency.Fingerprint{
		Key:      "k1",
		Method:   "POST",
		Route:    "/itineraries",
		BodyHash: "abc123",
	}
	rec := idempotency.Record{
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"id":"it-1"}`),
		CreatedAt:   clk.Now(),
	}

	if err := s.Put(context.Background(), fp, rec); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	clk.Advance(59 * time.Minute)
	got, ok, err := s.Get(context.Background(), fp)
	if err != nil || !ok {
		t.Fatalf("Get() ok=%v err=%v, want hit", ok, err)
	}
	if got.StatusCode != rec.StatusCode || string(got.Body) != string(rec.Body) {
		t.Fatalf("Get()=%+v, want %+v", got, rec)
	}

	clk.Advance(2 * time.Minute)
	if _, ok, _ := s.Get(context.Background(), fp); ok {
		t.Fatalf("Get() after ttl ok=true, want false")
	}
}

func TestStore_BodyIsCopied(t *testing.T) {
	t.Parallel()

	s := NewStore(clock.NewSystemClock(), 0)
	fp := idempotency.Fingerprint{Key: "k2", Method: "POST", Route: "/itineraries"}
	body := []byte("abc")
	if err := s.Put(context.Background(), fp, idempotency.Record{Body: body, CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("Put() err=%v", err)
	}
	body[0] = 'x'

	got, _, _ := s.Get(context.Background(), fp)
	if string(got.Body) != "abc" {
		t.Fatalf("body=%q, want abc", got.Body)
	}
}

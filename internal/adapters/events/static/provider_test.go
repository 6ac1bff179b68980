package static

import (
	"context"
	"testing"
	"time"
)

func TestEvents_WithinTripRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	got, err := NewProvider().Events(context.Background(), "Paris, France", start, start.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	ids := map[string]time.Time{}
	for _, ev := range got {
		ids[ev.ID] = ev.Date
	}
	if len(ids) != 2 {
		t.Fatalf("events=%v, want the day-1 and day-2 events", ids)
	}
	if d := ids["event-paris-3"]; !d.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("exhibition date=%v", d)
	}
	if _, ok := ids["event-paris-2"]; ok {
		t.Fatalf("day-3 event returned for a 3-day trip")
	}
}

func TestEvents_UnknownDestination(t *testing.T) {
	t.Parallel()

	got, err := NewProvider().Events(context.Background(), "Atlantis", time.Now(), time.Now().AddDate(0, 0, 7))
	if err != nil || len(got) != 0 {
		t.Fatalf("got=%v err=%v", got, err)
	}
}

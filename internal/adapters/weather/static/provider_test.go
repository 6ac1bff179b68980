package static

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

func TestForecast_OnePerDayAndDeterministic(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)

	first, err := NewProvider().Forecast(context.Background(), "Paris", start, end)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("len=%d, want 4", len(first))
	}
	for i, f := range first {
		if domain.DateKey(f.Date) != domain.DateKey(start.AddDate(0, 0, i)) {
			t.Fatalf("day %d date=%v", i, f.Date)
		}
		if f.Temperature < 15 || f.Temperature >= 30 || f.Humidity < 40 || f.Humidity >= 80 {
			t.Fatalf("day %d out of range: %+v", i, f)
		}
	}

	second, _ := NewProvider().Forecast(context.Background(), " paris ", start, end)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("forecast not deterministic")
	}
}

func TestForecast_EmptyRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	got, err := NewProvider().Forecast(context.Background(), "Paris", start, start.AddDate(0, 0, -1))
	if err != nil || len(got) != 0 {
		t.Fatalf("got=%v err=%v", got, err)
	}
}

package geo

import (
	"math"
	"testing"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

func TestDistanceMeters_KnownPair(t *testing.T) {
	t.Parallel()

	eiffel := domain.Coordinates{Lat: 48.8584, Lng: 2.2945}
	louvre := domain.Coordinates{Lat: 48.8606, Lng: 2.3376}

	got := DistanceMeters(eiffel, louvre)
	if math.Abs(got-3160) > 60 {
		t.Fatalf("distance=%.0f, want ~3160", got)
	}
	if d := DistanceMeters(eiffel, eiffel); d != 0 {
		t.Fatalf("self distance=%v", d)
	}
}

func TestWithin(t *testing.T) {
	t.Parallel()

	center := domain.Coordinates{Lat: 48.8566, Lng: 2.3522}
	near := domain.Coordinates{Lat: 48.8606, Lng: 2.3376} // ~1.1km
	far := domain.Coordinates{Lat: 48.8867, Lng: 2.3431}  // ~3.4km

	if !Within(center, near, 2000) {
		t.Fatalf("near point should be within 2km")
	}
	if Within(center, far, 2000) {
		t.Fatalf("far point should not be within 2km")
	}
}

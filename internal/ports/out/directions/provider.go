package directions

import (
	"context"
	"fmt"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// Route is a single origin->destination travel estimate.
type Route struct {
	DistanceMeters  int
	DurationMinutes int
	Mode            domain.TravelMode
}

// Provider is the commute collaborator.
type Provider interface {
	Directions(ctx context.Context, origin, destination domain.Coordinates, mode domain.TravelMode) (Route, error)
}

// PairKey identifies a cached route. Coordinates are rounded so that the same
// place fetched twice maps to one entry.
type PairKey struct {
	Mode domain.TravelMode
	A    string
	B    string
}

// NewPairKey builds a key from two coordinates rounded to ~1m.
func NewPairKey(origin, destination domain.Coordinates, mode domain.TravelMode) PairKey {
	return PairKey{
		Mode: mode,
		A:    fmt.Sprintf("%.5f,%.5f", origin.Lat, origin.Lng),
		B:    fmt.Sprintf("%.5f,%.5f", destination.Lat, destination.Lng),
	}
}

func (k PairKey) String() string {
	return string(k.Mode) + ":" + k.A + ":" + k.B
}

// Cache stores routes by pair. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, k PairKey) (Route, bool, error)
	Set(ctx context.Context, k PairKey, r Route, ttl time.Duration) error
}

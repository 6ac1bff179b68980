// Package estimate derives commute estimates from great-circle distance and a
// fixed speed per travel mode. It needs no network access.
package estimate

import (
	"context"
	"math"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/geo"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

// Speeds in meters per minute.
var speeds = map[domain.TravelMode]float64{
	domain.TravelModeWalking: 80,
	domain.TravelModeTransit: 250,
	domain.TravelModeDriving: 500,
}

type Provider struct{}

func NewProvider() Provider { return Provider{} }

func (Provider) Directions(ctx context.Context, origin, destination domain.Coordinates, mode domain.TravelMode) (directions.Route, error) {
	if err := ctx.Err(); err != nil {
		return directions.Route{}, err
	}
	speed, ok := speeds[mode]
	if !ok {
		mode = domain.TravelModeWalking
		speed = speeds[mode]
	}
	meters := geo.DistanceMeters(origin, destination)
	return directions.Route{
		DistanceMeters:  int(math.Round(meters)),
		DurationMinutes: int(math.Ceil(meters / speed)),
		Mode:            mode,
	}, nil
}

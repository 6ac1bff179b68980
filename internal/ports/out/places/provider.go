package places

import (
	"context"
	"errors"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

var ErrNotFound = errors.New("place not found")

// Place is the resolved form of a geocoded place reference.
type Place struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	Location         domain.Coordinates
}

// Provider is the candidate-activity collaborator.
//
// Nearby returns activities within radiusMeters of center whose category matches
// categoryHint. "No results" is an empty slice and a nil error; errors mean the
// provider itself could not answer.
type Provider interface {
	Nearby(ctx context.Context, center domain.Coordinates, radiusMeters int, categoryHint string) ([]domain.Activity, error)

	// Details resolves a place reference. Returns ErrNotFound for unknown IDs.
	Details(ctx context.Context, placeID string) (Place, error)
}

package itineraryrepo

import (
	"context"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// Repository persists generated itineraries.
//
// Implementations store the whole itinerary as one unit. Create fails with
// ErrAlreadyExists for a known ID; Save replaces an existing itinerary and fails
// with ErrNotFound otherwise. List returns summaries ordered by CreatedAt
// ascending, then ID.
type Repository interface {
	Create(ctx context.Context, it domain.Itinerary) error
	Save(ctx context.Context, it domain.Itinerary) error

	GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error)
	List(ctx context.Context) ([]domain.ItinerarySummary, error)
}

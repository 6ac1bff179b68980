package itineraries

import (
	"context"
	"fmt"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

// MaxAlternatives caps how many alternatives one request may ask for.
const MaxAlternatives = 20

// Planner is the itinerary engine the service drives.
type Planner interface {
	Build(ctx context.Context, trip domain.TripDetails) (domain.Itinerary, error)
	RegenerateDay(ctx context.Context, it domain.Itinerary, dayIndex int) (domain.Itinerary, error)
	SwapActivity(ctx context.Context, it domain.Itinerary, dayIndex, activityIndex int, replacement domain.Activity) (domain.Itinerary, error)
	Alternatives(ctx context.Context, it domain.Itinerary, dayIndex, activityIndex, count int) ([]domain.Activity, error)
}

// ActivityValidator checks a replacement activity before it is swapped in.
type ActivityValidator func(domain.Activity) error

type Service struct {
	planner     Planner
	itineraries itineraryrepo.Repository

	validateActivity ActivityValidator
}

func NewService(p Planner, repo itineraryrepo.Repository, validate ActivityValidator) *Service {
	return &Service{planner: p, itineraries: repo, validateActivity: validate}
}

// GenerateItinerary plans and stores a new itinerary.
func (s *Service) GenerateItinerary(ctx context.Context, trip domain.TripDetails) (domain.Itinerary, error) {
	it, err := s.planner.Build(ctx, trip)
	if err != nil {
		return domain.Itinerary{}, mapError(err)
	}
	if err := s.itineraries.Create(ctx, it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("store itinerary: %w", err)
	}
	return it, nil
}

func (s *Service) GetItinerary(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, mapError(err)
	}
	return it, nil
}

func (s *Service) ListItineraries(ctx context.Context) ([]domain.ItinerarySummary, error) {
	return s.itineraries.List(ctx)
}

func (s *Service) RegenerateDay(ctx context.Context, id domain.ItineraryID, dayIndex int) (domain.Itinerary, error) {
	it, err := s.GetItinerary(ctx, id)
	if err != nil {
		return domain.Itinerary{}, err
	}
	next, err := s.planner.RegenerateDay(ctx, it, dayIndex)
	if err != nil {
		return domain.Itinerary{}, mapError(err)
	}
	if err := s.itineraries.Save(ctx, next); err != nil {
		return domain.Itinerary{}, mapError(err)
	}
	return next, nil
}

func (s *Service) SwapActivity(ctx context.Context, id domain.ItineraryID, dayIndex, itemIndex int, replacement domain.Activity) (domain.Itinerary, error) {
	replacement.Name = domain.NormalizeHumanName(replacement.Name)
	if s.validateActivity != nil {
		if err := s.validateActivity(replacement); err != nil {
			return domain.Itinerary{}, mapError(err)
		}
	}

	it, err := s.GetItinerary(ctx, id)
	if err != nil {
		return domain.Itinerary{}, err
	}
	next, err := s.planner.SwapActivity(ctx, it, dayIndex, itemIndex, replacement)
	if err != nil {
		return domain.Itinerary{}, mapError(err)
	}
	if err := s.itineraries.Save(ctx, next); err != nil {
		return domain.Itinerary{}, mapError(err)
	}
	return next, nil
}

// AlternativeActivities suggests replacements for one scheduled item.
// count <= 0 means the planner default.
func (s *Service) AlternativeActivities(ctx context.Context, id domain.ItineraryID, dayIndex, itemIndex, count int) ([]domain.Activity, error) {
	if count > MaxAlternatives {
		return nil, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: map[string]any{"count": fmt.Sprintf("must be at most %d", MaxAlternatives)},
		}
	}
	it, err := s.GetItinerary(ctx, id)
	if err != nil {
		return nil, err
	}
	alts, err := s.planner.Alternatives(ctx, it, dayIndex, itemIndex, count)
	if err != nil {
		return nil, mapError(err)
	}
	return alts, nil
}

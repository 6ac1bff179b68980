package planner

import (
	"context"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// Build plans a complete itinerary with one day per calendar day in
// [StartDate, EndDate].
func (p *Planner) Build(ctx context.Context, trip domain.TripDetails) (domain.Itinerary, error) {
	if err := ValidateTrip(trip); err != nil {
		return domain.Itinerary{}, err
	}
	trip = normalizeTrip(trip)
	start, end := *trip.StartDate, *trip.EndDate
	dayCount := domain.TripDayCount(start, end)

	pool := p.candidatePool(ctx, trip)
	weather := p.forecasts(ctx, trip, start, end)

	days := make([]domain.DailyItinerary, dayCount)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for i := range days {
		g.Go(func() error {
			date := start.AddDate(0, 0, i)
			items, err := p.planDay(gctx, pool, trip.Preferences, i, dayCount)
			if err != nil {
				return err
			}
			days[i] = domain.DailyItinerary{
				Date:    date,
				Items:   items,
				Weather: weather[domain.DateKey(date)],
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Itinerary{}, err
	}

	now := p.clock.Now()
	return domain.Itinerary{
		ID:          p.newID(),
		TripDetails: trip,
		Days:        days,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Planner) planDay(ctx context.Context, pool []domain.Activity, prefs domain.TripPreferences, dayIndex, totalDays int) ([]domain.ItineraryItem, error) {
	selected := Select(pool, prefs, dayIndex, totalDays)
	return p.augmenter.Augment(ctx, Schedule(selected, prefs.TripStyle))
}

// normalizeTrip returns a copy that shares nothing mutable with the caller's value.
func normalizeTrip(t domain.TripDetails) domain.TripDetails {
	t.Destination = domain.NormalizeHumanName(t.Destination)
	if t.StartDate != nil {
		d := domain.DateOnly(*t.StartDate)
		t.StartDate = &d
	}
	if t.EndDate != nil {
		d := domain.DateOnly(*t.EndDate)
		t.EndDate = &d
	}
	if t.Location != nil {
		loc := *t.Location
		t.Location = &loc
	}
	t.Preferences.Interests = maps.Clone(t.Preferences.Interests)
	return t
}

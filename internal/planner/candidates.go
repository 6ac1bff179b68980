package planner

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// center resolves the destination coordinate, through the places provider when
// the trip only carries a place reference.
func (p *Planner) center(ctx context.Context, t domain.TripDetails) (domain.Coordinates, error) {
	if t.Location != nil {
		return *t.Location, nil
	}
	place, err := p.places.Details(ctx, t.PlaceID)
	if err != nil {
		return domain.Coordinates{}, &ProviderError{Provider: "places", Err: err}
	}
	return place.Location, nil
}

// candidatePool fetches the trip-wide candidate pool: one nearby query per
// interest weighted above 2, plus local events, budget filtered. Failed lookups
// are logged and contribute nothing; the pool may come back empty.
func (p *Planner) candidatePool(ctx context.Context, t domain.TripDetails) []domain.Activity {
	prefs := t.Preferences

	var pool []domain.Activity
	center, err := p.center(ctx, t)
	if err != nil {
		log.Printf("planner: resolve destination %q: %v", t.PlaceID, err)
	} else {
		pool = p.nearbyCandidates(ctx, center, prefs)
	}

	if p.events != nil && t.StartDate != nil && t.EndDate != nil {
		pool = append(pool, p.eventCandidates(ctx, t.Destination, *t.StartDate, *t.EndDate)...)
	}

	return FilterByBudget(pool, prefs.Budget)
}

func (p *Planner) nearbyCandidates(ctx context.Context, center domain.Coordinates, prefs domain.TripPreferences) []domain.Activity {
	var wanted []domain.Interest
	for _, interest := range domain.Interests {
		if prefs.Weight(interest) > searchWeight {
			wanted = append(wanted, interest)
		}
	}

	results := make([][]domain.Activity, len(wanted))
	radius := prefs.Mobility.RadiusMeters()

	var g errgroup.Group
	g.SetLimit(p.opts.Concurrency)
	for i, interest := range wanted {
		g.Go(func() error {
			category := SearchCategory(interest)
			found, err := p.places.Nearby(ctx, center, radius, category)
			if err != nil {
				log.Printf("planner: nearby %s lookup failed: %v", category, err)
				return nil
			}
			results[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var pool []domain.Activity
	for _, r := range results {
		pool = append(pool, r...)
	}
	return pool
}

func (p *Planner) eventCandidates(ctx context.Context, destination string, start, end time.Time) []domain.Activity {
	evs, err := p.events.Events(ctx, destination, domain.DateOnly(start), domain.DateOnly(end))
	if err != nil {
		log.Printf("planner: events lookup for %q failed: %v", destination, err)
		return nil
	}
	out := make([]domain.Activity, 0, len(evs))
	for _, ev := range evs {
		out = append(out, domain.EventActivity(ev))
	}
	return out
}

// forecasts returns the trip-range forecast keyed by DateKey. Weather is
// advisory, so any failure just leaves the days without a summary.
func (p *Planner) forecasts(ctx context.Context, t domain.TripDetails, start, end time.Time) map[string]*domain.WeatherSummary {
	if p.weather == nil {
		return nil
	}
	ref := t.Destination
	if ref == "" {
		ref = t.PlaceID
	}
	fs, err := p.weather.Forecast(ctx, ref, start, end)
	if err != nil {
		log.Printf("planner: weather forecast for %q failed: %v", ref, err)
		return nil
	}
	out := make(map[string]*domain.WeatherSummary, len(fs))
	for _, f := range fs {
		s := f.Summarize()
		out[domain.DateKey(f.Date)] = &s
	}
	return out
}

package planner_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/planner"
	"github.com/triply-travel/itinerary-api/internal/platform/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
	"github.com/triply-travel/itinerary-api/internal/ports/out/places"
)

var paris = domain.Coordinates{Lat: 48.8566, Lng: 2.3522}

func act(id, category string, rating float64, price, duration int) domain.Activity {
	return domain.Activity{
		ID:          domain.ActivityID(id),
		Name:        "Activity " + id,
		Category:    category,
		Rating:      domain.Float64(rating),
		Price:       domain.Int(price),
		Coordinates: domain.Coordinates{Lat: paris.Lat + float64(len(id))*0.001, Lng: paris.Lng},
		Duration:    duration,
	}
}

type fakePlaces struct {
	mu         sync.Mutex
	byCategory map[string][]domain.Activity
	errFor     map[string]error
	details    map[string]places.Place
	queried    []string
}

func (f *fakePlaces) Nearby(_ context.Context, _ domain.Coordinates, _ int, hint string) ([]domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queried = append(f.queried, hint)
	if err := f.errFor[hint]; err != nil {
		return nil, err
	}
	return append([]domain.Activity(nil), f.byCategory[hint]...), nil
}

func (f *fakePlaces) Details(_ context.Context, placeID string) (places.Place, error) {
	p, ok := f.details[placeID]
	if !ok {
		return places.Place{}, places.ErrNotFound
	}
	return p, nil
}

func (f *fakePlaces) Queried() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queried...)
}

// fakeDirections answers every leg with the same duration; tests change it
// between operations to see which legs were looked up again.
type fakeDirections struct {
	mu       sync.Mutex
	duration int
	err      error
	calls    int
}

func (f *fakeDirections) Directions(_ context.Context, _, _ domain.Coordinates, mode domain.TravelMode) (directions.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return directions.Route{}, f.err
	}
	return directions.Route{DistanceMeters: f.duration * 80, DurationMinutes: f.duration, Mode: mode}, nil
}

func (f *fakeDirections) set(duration int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.duration = duration
	f.err = err
}

func (f *fakeDirections) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeWeather struct {
	forecasts []domain.WeatherForecast
	err       error
}

func (f fakeWeather) Forecast(context.Context, string, time.Time, time.Time) ([]domain.WeatherForecast, error) {
	return f.forecasts, f.err
}

type fakeEvents struct {
	events []domain.LocalEvent
}

func (f fakeEvents) Events(context.Context, string, time.Time, time.Time) ([]domain.LocalEvent, error) {
	return f.events, nil
}

var errBoom = errors.New("boom")

func parisPlaces() *fakePlaces {
	return &fakePlaces{
		byCategory: map[string][]domain.Activity{
			"restaurant": {
				act("r1", "restaurant", 4.6, 2, 60),
				act("r2", "restaurant", 4.2, 1, 60),
				act("r3", "cafe", 4.0, 1, 45),
			},
			"museum": {
				act("m1", "museum", 4.8, 2, 120),
				act("m2", "art_gallery", 4.4, 1, 90),
			},
			"park": {
				act("p1", "park", 4.5, 0, 60),
				act("p2", "park", 3.9, 0, 45),
			},
		},
		details: map[string]places.Place{
			"paris": {PlaceID: "paris", Name: "Paris", Location: paris},
		},
	}
}

func parisTrip(style domain.TripStyle) domain.TripDetails {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	return domain.TripDetails{
		Destination: "Paris",
		PlaceID:     "paris",
		StartDate:   &start,
		EndDate:     &end,
		Preferences: domain.TripPreferences{
			TripStyle: style,
			Interests: map[domain.Interest]int{
				domain.InterestFood:      5,
				domain.InterestCulture:   4,
				domain.InterestNature:    3,
				domain.InterestNightlife: 1,
			},
			Budget:     domain.BudgetMidRange,
			Companions: domain.CompanionsCouple,
			Mobility:   domain.Mobility{WalkingDistance: 2000},
		},
	}
}

type harness struct {
	planner    *planner.Planner
	places     *fakePlaces
	directions *fakeDirections
	clock      *clock.ManualClock
}

func newHarness(opts planner.Options) *harness {
	h := &harness{
		places:     parisPlaces(),
		directions: &fakeDirections{duration: 5},
		clock:      clock.NewManualClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)),
	}
	h.planner = planner.New(planner.Providers{Places: h.places, Directions: h.directions}, h.clock, opts)
	h.planner.SetNewIDForTest(func() domain.ItineraryID { return "it-1" })
	return h
}

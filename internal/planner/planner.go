// Package planner turns a traveler's trip details into a scored, day-partitioned,
// time-scheduled itinerary, and applies partial updates to an existing one.
//
// The planner holds no per-trip state. Every operation takes the trip or
// itinerary it works on and returns a new value; inputs are never modified.
package planner

import (
	"github.com/google/uuid"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
	"github.com/triply-travel/itinerary-api/internal/ports/out/events"
	"github.com/triply-travel/itinerary-api/internal/ports/out/places"
	"github.com/triply-travel/itinerary-api/internal/ports/out/weather"
)

// Providers are the collaborators the planner calls out to.
// Places and Directions are required; Weather and Events may be nil.
type Providers struct {
	Places     places.Provider
	Directions directions.Provider
	Weather    weather.Provider
	Events     events.Provider
}

type Planner struct {
	places  places.Provider
	weather weather.Provider
	events  events.Provider

	augmenter *Augmenter
	clock     clock.Clock
	opts      Options

	newID func() domain.ItineraryID
}

func New(p Providers, clk clock.Clock, opts Options) *Planner {
	opts = opts.withDefaults()
	return &Planner{
		places:    p.Places,
		weather:   p.Weather,
		events:    p.Events,
		augmenter: NewAugmenter(p.Directions, opts.CommuteFailure, opts.Concurrency),
		clock:     clk,
		opts:      opts,
		newID: func() domain.ItineraryID {
			return domain.ItineraryID(uuid.NewString())
		},
	}
}

// SetNewIDForTest overrides itinerary ID generation (tests only).
func (p *Planner) SetNewIDForTest(fn func() domain.ItineraryID) {
	p.newID = fn
}

func (p *Planner) Options() Options { return p.opts }

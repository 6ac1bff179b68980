// Package static serves a curated list of recurring local events for the demo
// destinations. Event dates are relative to the trip start.
package static

import (
	"context"
	"strings"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

type template struct {
	event     domain.LocalEvent
	dayOffset int
}

var byDestination = map[string][]template{
	"paris": {
		{dayOffset: 2, event: domain.LocalEvent{
			ID: "event-paris-1", Name: "Jazz Concert at Parc des Buttes-Chaumont",
			Description: "An evening of jazz in one of the city's most beautiful parks.",
			Location:    "Parc des Buttes-Chaumont", Address: "1 Rue Botzaris, 75019 Paris, France",
			StartTime: "19:00", EndTime: "22:00", Category: "concert", Price: domain.Int(0),
			Coordinates: domain.Coordinates{Lat: 48.8768, Lng: 2.3819},
		}},
		{dayOffset: 3, event: domain.LocalEvent{
			ID: "event-paris-2", Name: "Food Market at Place de la Bastille",
			Description: "Weekly food market featuring local producers and specialties.",
			Location:    "Place de la Bastille", Address: "Place de la Bastille, 75011 Paris, France",
			StartTime: "10:00", EndTime: "18:00", Category: "market", Price: domain.Int(0),
			Coordinates: domain.Coordinates{Lat: 48.8531, Lng: 2.3693},
		}},
		{dayOffset: 1, event: domain.LocalEvent{
			ID: "event-paris-3", Name: "Art Exhibition at Palais de Tokyo",
			Description: "Contemporary art exhibition featuring international artists.",
			Location:    "Palais de Tokyo", Address: "13 Avenue du Président Wilson, 75116 Paris, France",
			StartTime: "12:00", EndTime: "20:00", Category: "exhibition", Price: domain.Int(1),
			Coordinates: domain.Coordinates{Lat: 48.8639, Lng: 2.2974},
		}},
	},
	"london": {
		{dayOffset: 2, event: domain.LocalEvent{
			ID: "event-london-1", Name: "Camden Market Food Festival",
			Description: "Food festival at Camden Market with international cuisine.",
			Location:    "Camden Market", Address: "Camden Lock Place, London NW1 8AF, UK",
			StartTime: "11:00", EndTime: "20:00", Category: "festival", Price: domain.Int(0),
			Coordinates: domain.Coordinates{Lat: 51.5415, Lng: -0.1468},
		}},
		{dayOffset: 4, event: domain.LocalEvent{
			ID: "event-london-2", Name: "Shakespeare in the Park",
			Description: "Open-air theater performance of a Shakespeare classic.",
			Location:    "Regent's Park Open Air Theatre", Address: "Inner Cir, London NW1 4NU, UK",
			StartTime: "19:30", EndTime: "22:00", Category: "theater", Price: domain.Int(2),
			Coordinates: domain.Coordinates{Lat: 51.5283, Lng: -0.1526},
		}},
	},
}

type Provider struct{}

func NewProvider() Provider { return Provider{} }

// Events matches the destination on its first comma-separated part, so
// "Paris" and "Paris, France" both hit.
func (Provider) Events(ctx context.Context, destination string, start, end time.Time) ([]domain.LocalEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	city, _, _ := strings.Cut(destination, ",")
	key := strings.ToLower(domain.NormalizeHumanName(city))

	first, last := domain.DateOnly(start), domain.DateOnly(end)
	out := make([]domain.LocalEvent, 0)
	for _, tpl := range byDestination[key] {
		ev := tpl.event
		ev.Date = first.AddDate(0, 0, tpl.dayOffset)
		if ev.Date.After(last) {
			continue
		}
		if ev.Price != nil {
			ev.Price = domain.Int(*ev.Price)
		}
		out = append(out, ev)
	}
	return out, nil
}

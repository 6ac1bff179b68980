// Package catalog is a built-in places provider backed by a curated set of
// activities for demo destinations. It lets the API run without third-party keys.
package catalog

import (
	"context"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/geo"
	"github.com/triply-travel/itinerary-api/internal/ports/out/places"
)

type Provider struct {
	destinations []destination
}

func NewProvider() *Provider {
	return &Provider{destinations: destinations}
}

// Nearby returns catalog entries within radiusMeters of center that answer to
// categoryHint (every entry when the hint is empty), in catalog order.
func (p *Provider) Nearby(ctx context.Context, center domain.Coordinates, radiusMeters int, categoryHint string) ([]domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hint := domain.NormalizeCategory(categoryHint)
	out := make([]domain.Activity, 0)
	for _, d := range p.destinations {
		for _, e := range d.entries {
			if hint != "" && !e.answersTo(hint) {
				continue
			}
			pt := domain.Coordinates{Lat: e.lat, Lng: e.lng}
			if !geo.Within(center, pt, float64(radiusMeters)) {
				continue
			}
			out = append(out, e.activity())
		}
	}
	return out, nil
}

// Details resolves destination place IDs ("place-paris") and catalog place IDs.
func (p *Provider) Details(ctx context.Context, placeID string) (places.Place, error) {
	if err := ctx.Err(); err != nil {
		return places.Place{}, err
	}
	for _, d := range p.destinations {
		if d.place.id == placeID {
			return places.Place{
				PlaceID:          d.place.id,
				Name:             d.place.name,
				FormattedAddress: d.place.address,
				Location:         d.place.location,
			}, nil
		}
		for _, e := range d.entries {
			if (e.placeID != "" && e.placeID == placeID) || e.id == placeID {
				return places.Place{
					PlaceID:          placeID,
					Name:             e.name,
					FormattedAddress: e.address,
					Location:         domain.Coordinates{Lat: e.lat, Lng: e.lng},
				}, nil
			}
		}
	}
	return places.Place{}, places.ErrNotFound
}

func (e entry) answersTo(hint string) bool {
	for _, t := range e.types {
		if t == hint {
			return true
		}
	}
	return false
}

func (e entry) activity() domain.Activity {
	placeID := e.placeID
	if placeID == "" {
		placeID = "catalog-" + e.id
	}
	return domain.Activity{
		ID:          domain.ActivityID(e.id),
		Name:        e.name,
		Address:     e.address,
		Description: e.description,
		PlaceID:     placeID,
		Category:    e.types[0],
		Rating:      domain.Float64(e.rating),
		Price:       domain.Int(e.price),
		Coordinates: domain.Coordinates{Lat: e.lat, Lng: e.lng},
		Duration:    e.duration,
		IsOutdoor:   domain.Bool(e.outdoor),
	}
}

// Package googleplaces implements places.Provider on the Google Places web service
// (Nearby Search and Place Details).
package googleplaces

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/planner"
	"github.com/triply-travel/itinerary-api/internal/platform/outbound"
	"github.com/triply-travel/itinerary-api/internal/ports/out/places"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

type Provider struct {
	client  *outbound.Client
	apiKey  string
	baseURL string
}

func NewProvider(client *outbound.Client, apiKey string) *Provider {
	return &Provider{client: client, apiKey: apiKey, baseURL: DefaultBaseURL}
}

// SetBaseURLForTest points the provider at a fake server.
func (p *Provider) SetBaseURLForTest(u string) { p.baseURL = u }

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	FormattedAddress string   `json:"formatted_address"`
	Types            []string `json:"types"`
	Rating           *float64 `json:"rating"`
	PriceLevel       *int     `json:"price_level"`
	Geometry         struct {
		Location location `json:"location"`
	} `json:"geometry"`
}

type nearbyResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []placeResult `json:"results"`
}

type detailsResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Result       placeResult `json:"result"`
}

func (p *Provider) Nearby(ctx context.Context, center domain.Coordinates, radiusMeters int, categoryHint string) ([]domain.Activity, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	q.Set("radius", strconv.Itoa(radiusMeters))
	if categoryHint != "" {
		q.Set("type", categoryHint)
	}
	q.Set("key", p.apiKey)

	var resp nearbyResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/nearbysearch/json", q, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []domain.Activity{}, nil
	default:
		return nil, fmt.Errorf("google places nearby: status %s: %s", resp.Status, resp.ErrorMessage)
	}

	out := make([]domain.Activity, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, toActivity(r, categoryHint))
	}
	return out, nil
}

func (p *Provider) Details(ctx context.Context, placeID string) (places.Place, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "place_id,name,formatted_address,geometry")
	q.Set("key", p.apiKey)

	var resp detailsResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/details/json", q, &resp); err != nil {
		return places.Place{}, err
	}
	switch resp.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return places.Place{}, places.ErrNotFound
	default:
		return places.Place{}, fmt.Errorf("google places details: status %s: %s", resp.Status, resp.ErrorMessage)
	}

	r := resp.Result
	return places.Place{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		Location:         domain.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
	}, nil
}

// category picks the first type the planner knows an interest for, then the
// requested hint, then the first type Google reported.
func category(types []string, hint string) string {
	for _, t := range types {
		if _, ok := planner.InterestFor(t); ok {
			return domain.NormalizeCategory(t)
		}
	}
	if hint != "" {
		return domain.NormalizeCategory(hint)
	}
	if len(types) > 0 {
		return domain.NormalizeCategory(types[0])
	}
	return ""
}

func toActivity(r placeResult, hint string) domain.Activity {
	cat := category(r.Types, hint)
	a := domain.Activity{
		ID:          domain.ActivityID(r.PlaceID),
		Name:        domain.NormalizeHumanName(r.Name),
		Address:     r.Vicinity,
		PlaceID:     r.PlaceID,
		Category:    cat,
		Rating:      r.Rating,
		Price:       r.PriceLevel,
		Coordinates: domain.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		Duration:    domain.DefaultPlaceDurationMinutes,
	}
	if cat == "park" {
		a.IsOutdoor = domain.Bool(true)
	}
	return a
}

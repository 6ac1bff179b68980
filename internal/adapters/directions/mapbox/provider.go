// Package mapbox implements directions.Provider on the Mapbox Directions API.
package mapbox

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/outbound"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

const DefaultBaseURL = "https://api.mapbox.com/directions/v5/mapbox"

// Mapbox has no public transit profile; transit legs are routed as driving.
var profiles = map[domain.TravelMode]string{
	domain.TravelModeWalking: "walking",
	domain.TravelModeTransit: "driving",
	domain.TravelModeDriving: "driving",
}

type Provider struct {
	client  *outbound.Client
	token   string
	baseURL string
}

func NewProvider(client *outbound.Client, accessToken string) *Provider {
	return &Provider{client: client, token: accessToken, baseURL: DefaultBaseURL}
}

// SetBaseURLForTest points the provider at a fake server.
func (p *Provider) SetBaseURLForTest(u string) { p.baseURL = u }

type response struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

func (p *Provider) Directions(ctx context.Context, origin, destination domain.Coordinates, mode domain.TravelMode) (directions.Route, error) {
	profile, ok := profiles[mode]
	if !ok {
		mode, profile = domain.TravelModeWalking, profiles[domain.TravelModeWalking]
	}
	coords := fmt.Sprintf("%f,%f;%f,%f", origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	q := url.Values{}
	q.Set("alternatives", "false")
	q.Set("overview", "false")
	q.Set("access_token", p.token)

	var resp response
	if err := p.client.GetJSON(ctx, p.baseURL+"/"+profile+"/"+coords, q, &resp); err != nil {
		return directions.Route{}, err
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return directions.Route{}, fmt.Errorf("mapbox: no route (code %q)", resp.Code)
	}
	r := resp.Routes[0]
	return directions.Route{
		DistanceMeters:  int(math.Round(r.Distance)),
		DurationMinutes: int(math.Ceil(r.Duration / 60)),
		Mode:            mode,
	}, nil
}

package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/outbound"
)

func TestProvider_Directions(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":1234.6,"duration":901}]}`))
	}))
	t.Cleanup(srv.Close)

	p := NewProvider(outbound.NewClient(outbound.Options{Service: "mapbox"}), "pk.test")
	p.SetBaseURLForTest(srv.URL)

	r, err := p.Directions(context.Background(),
		domain.Coordinates{Lat: 48.8584, Lng: 2.2945},
		domain.Coordinates{Lat: 48.8606, Lng: 2.3376},
		domain.TravelModeWalking)
	if err != nil {
		t.Fatalf("Directions: %v", err)
	}
	if r.DistanceMeters != 1235 || r.DurationMinutes != 16 || r.Mode != domain.TravelModeWalking {
		t.Fatalf("route=%+v", r)
	}
	if !strings.HasPrefix(gotPath, "/walking/2.294500,48.858400;") || gotToken != "pk.test" {
		t.Fatalf("path=%q token=%q", gotPath, gotToken)
	}
}

func TestProvider_NoRouteIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	t.Cleanup(srv.Close)

	p := NewProvider(outbound.NewClient(outbound.Options{Service: "mapbox"}), "pk.test")
	p.SetBaseURLForTest(srv.URL)
	if _, err := p.Directions(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1}, domain.TravelModeDriving); err == nil {
		t.Fatalf("expected error")
	}
}

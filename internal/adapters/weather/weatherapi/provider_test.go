package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/outbound"
)

func TestForecast_FiltersToTripRange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast.json" || r.URL.Query().Get("q") != "London" || r.URL.Query().Get("key") != "k" {
			http.Error(w, "unexpected", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"forecast":{"forecastday":[
			{"date":"2026-07-09","day":{"avgtemp_c":20,"condition":{"text":"Sunny","icon":"//cdn/sun.png"}}},
			{"date":"2026-07-10","day":{"avgtemp_c":31.5,"totalprecip_mm":0,"avghumidity":55,"maxwind_kph":12,"condition":{"text":"Sunny","icon":"//cdn/sun.png"}}},
			{"date":"2026-07-11","day":{"avgtemp_c":17,"totalprecip_mm":6.2,"avghumidity":80,"maxwind_kph":20,"condition":{"text":"Patchy rain nearby","icon":"//cdn/rain.png"}}}
		]}}`))
	}))
	t.Cleanup(srv.Close)

	p := NewProvider(outbound.NewClient(outbound.Options{Service: "weatherapi"}), "k")
	p.SetBaseURLForTest(srv.URL)

	got, err := p.Forecast(context.Background(), "London",
		time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if domain.ClassifyWeather(got[0]) != domain.WeatherAdvisoryHeat {
		t.Fatalf("day 0=%+v, want heat", got[0])
	}
	if domain.ClassifyWeather(got[1]) != domain.WeatherAdvisoryRain || got[1].Humidity != 80 {
		t.Fatalf("day 1=%+v, want rain", got[1])
	}
}

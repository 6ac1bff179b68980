// Package weatherapi implements weather.Provider on the weatherapi.com forecast API.
package weatherapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/platform/outbound"
)

const (
	DefaultBaseURL = "https://api.weatherapi.com/v1"
	// maxForecastDays is the longest horizon the API serves.
	maxForecastDays = 14
)

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

type forecastResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC      float64 `json:"avgtemp_c"`
				TotalPrecipMM float64 `json:"totalprecip_mm"`
				AvgHumidity   float64 `json:"avghumidity"`
				MaxWindKPH    float64 `json:"maxwind_kph"`
				Condition     struct {
					Text string `json:"text"`
					Icon string `json:"icon"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Forecast returns the days of the upstream forecast that fall in [start, end].
// Days beyond the provider's horizon are simply absent.
func (p *Provider) Forecast(ctx context.Context, locationRef string, start, end time.Time) ([]domain.WeatherForecast, error) {
	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("q", locationRef)
	q.Set("days", strconv.Itoa(maxForecastDays))
	q.Set("aqi", "no")
	q.Set("alerts", "no")

	var resp forecastResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/forecast.json", q, &resp); err != nil {
		return nil, err
	}

	first, last := domain.DateOnly(start), domain.DateOnly(end)
	out := make([]domain.WeatherForecast, 0, len(resp.Forecast.ForecastDay))
	for _, fd := range resp.Forecast.ForecastDay {
		date, err := time.Parse("2006-01-02", fd.Date)
		if err != nil {
			return nil, fmt.Errorf("weatherapi: bad forecast date %q: %w", fd.Date, err)
		}
		if date.Before(first) || date.After(last) {
			continue
		}
		out = append(out, domain.WeatherForecast{
			Date:          date,
			Temperature:   fd.Day.AvgTempC,
			Condition:     fd.Day.Condition.Text,
			Icon:          fd.Day.Condition.Icon,
			Precipitation: fd.Day.TotalPrecipMM,
			Humidity:      fd.Day.AvgHumidity,
			WindSpeed:     fd.Day.MaxWindKPH,
		})
	}
	return out, nil
}

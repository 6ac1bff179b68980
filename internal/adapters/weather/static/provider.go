// Package static produces a deterministic synthetic forecast. The same location
// and date always give the same weather, which keeps demos and tests stable.
package static

import (
	"context"
	"hash/fnv"
	"strings"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

type condition struct {
	text          string
	icon          string
	precipitation float64
}

var conditions = []condition{
	{text: "Sunny", icon: "sun", precipitation: 0},
	{text: "Partly Cloudy", icon: "partly-cloudy", precipitation: 0},
	{text: "Cloudy", icon: "cloudy", precipitation: 0},
	{text: "Light Rain", icon: "rain", precipitation: 2.5},
	{text: "Heavy Rain", icon: "heavy-rain", precipitation: 8.0},
}

type Provider struct{}

func NewProvider() Provider { return Provider{} }

func (Provider) Forecast(ctx context.Context, locationRef string, start, end time.Time) ([]domain.WeatherForecast, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	days := domain.TripDayCount(start, end)
	if days < 1 {
		return []domain.WeatherForecast{}, nil
	}
	loc := strings.ToLower(domain.NormalizeHumanName(locationRef))

	out := make([]domain.WeatherForecast, 0, days)
	for i := 0; i < days; i++ {
		date := domain.DateOnly(start).AddDate(0, 0, i)
		seed := seedFor(loc, date)
		c := conditions[seed%uint32(len(conditions))]
		out = append(out, domain.WeatherForecast{
			Date:          date,
			Temperature:   float64(15 + (seed>>3)%15),
			Condition:     c.text,
			Icon:          c.icon,
			Precipitation: c.precipitation,
			Humidity:      float64(40 + (seed>>7)%40),
			WindSpeed:     float64(5 + (seed>>11)%20),
		})
	}
	return out, nil
}

func seedFor(location string, date time.Time) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(location))
	_, _ = h.Write([]byte(domain.DateKey(date)))
	return h.Sum32()
}

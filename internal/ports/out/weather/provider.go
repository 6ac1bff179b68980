package weather

import (
	"context"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// Provider returns a daily forecast for [start, end].
//
// The result may cover only some of the requested days; callers treat missing
// days as "no forecast".
type Provider interface {
	Forecast(ctx context.Context, locationRef string, start, end time.Time) ([]domain.WeatherForecast, error)
}

package events

import (
	"context"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// Provider lists local events happening at a destination between start and end (inclusive).
type Provider interface {
	Events(ctx context.Context, destination string, start, end time.Time) ([]domain.LocalEvent, error)
}

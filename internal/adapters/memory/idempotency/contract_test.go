package idempotency

import (
	"testing"

	"github.com/triply-travel/itinerary-api/internal/adapters/contracttest"
	"github.com/triply-travel/itinerary-api/internal/platform/clock"
	idempotencyport "github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
)

func TestContract_IdempotencyStore(t *testing.T) {
	contracttest.RunIdempotencyStore(t, func(t *testing.T) (idempotencyport.Store, func()) {
		t.Helper()
		return NewStore(clock.NewSystemClock(), DefaultTTL), nil
	})
}

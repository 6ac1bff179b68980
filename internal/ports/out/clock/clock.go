package clock

import "time"

// Clock provides time to the application.
// Itinerary CreatedAt/UpdatedAt stamps come from it, so tests can pin them
// with a controllable implementation.
type Clock interface {
	Now() time.Time
}

package domain

import "time"

const (
	MinPriceTier = 0
	MaxPriceTier = 4

	MinRating = 0.0
	MaxRating = 5.0

	// EventCategory is the category assigned to local events turned into activities.
	EventCategory = "event"
	// DefaultEventDurationMinutes is the slot length given to a local event.
	DefaultEventDurationMinutes = 120
	// DefaultPlaceDurationMinutes is the visit length assumed for a place
	// when the provider does not know better.
	DefaultPlaceDurationMinutes = 60
)

// Activity is a candidate place or event. Values are immutable once fetched:
// the planner copies them into items but never edits them.
type Activity struct {
	ID          ActivityID `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	PlaceID     string     `json:"placeId,omitempty"`
	Category    string     `json:"category"`

	// Rating is 0..5 when known.
	Rating *float64 `json:"rating,omitempty"`
	// Price is the price tier 0 (free) .. 4 (luxury) when known.
	Price *int `json:"price,omitempty"`

	Coordinates Coordinates `json:"coordinates"`
	// Duration is the expected visit length in minutes (> 0).
	Duration int `json:"duration"`

	OpeningHours map[string]string `json:"openingHours,omitempty"`
	IsOutdoor    *bool             `json:"isOutdoor,omitempty"`
}

// RatingOrZero returns the rating, or 0 if unknown.
func (a Activity) RatingOrZero() float64 {
	if a.Rating == nil {
		return 0
	}
	return *a.Rating
}

// LocalEvent is a dated happening at the destination (concert, market, exhibition).
type LocalEvent struct {
	ID          string
	Name        string
	Description string
	Location    string
	Address     string
	StartTime   string
	EndTime     string
	Date        time.Time
	Category    string
	ImageURL    string
	Price       *int
	Coordinates Coordinates
}

// EventActivity converts a local event into a candidate activity.
func EventActivity(ev LocalEvent) Activity {
	return Activity{
		ID:          ActivityID(ev.ID),
		Name:        ev.Name,
		Address:     ev.Address,
		Description: ev.Description,
		ImageURL:    ev.ImageURL,
		PlaceID:     "event-" + ev.ID,
		Category:    EventCategory,
		Price:       ev.Price,
		Coordinates: ev.Coordinates,
		Duration:    DefaultEventDurationMinutes,
	}
}

// Float64, Int and Bool return pointers for optional fields.
func Float64(v float64) *float64 { return &v }
func Int(v int) *int             { return &v }
func Bool(v bool) *bool          { return &v }

package domain

import "time"

type TravelMode string

const (
	TravelModeWalking TravelMode = "WALKING"
	TravelModeTransit TravelMode = "TRANSIT"
	TravelModeDriving TravelMode = "DRIVING"
)

func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeWalking, TravelModeTransit, TravelModeDriving:
		return true
	default:
		return false
	}
}

// CommuteInfo describes travel from the previous item of the same day.
type CommuteInfo struct {
	Duration int        `json:"duration"` // minutes
	Distance int        `json:"distance"` // meters
	Mode     TravelMode `json:"mode"`

	// Degraded is set when the commute provider failed and the values are the
	// zero fallback rather than a real estimate.
	Degraded bool `json:"degraded,omitempty"`
}

// ItineraryItem is one activity placed on the day's clock.
type ItineraryItem struct {
	Activity  Activity `json:"activity"`
	StartTime string   `json:"startTime"` // H:MM, 24h
	EndTime   string   `json:"endTime"`   // H:MM, 24h

	CommuteFromPrevious *CommuteInfo `json:"commuteFromPrevious,omitempty"`
}

type DailyItinerary struct {
	Date    time.Time       `json:"date"` // date-only semantics
	Items   []ItineraryItem `json:"items"`
	Weather *WeatherSummary `json:"weatherForecast,omitempty"`
}

type Itinerary struct {
	ID          ItineraryID      `json:"id"`
	TripDetails TripDetails      `json:"tripDetails"`
	Days        []DailyItinerary `json:"days"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ItinerarySummary is the list-view shape of an itinerary.
type ItinerarySummary struct {
	ID          ItineraryID `json:"id"`
	Destination string      `json:"destination"`
	StartDate   *time.Time  `json:"startDate,omitempty"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	DayCount    int         `json:"dayCount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (it Itinerary) Summary() ItinerarySummary {
	return ItinerarySummary{
		ID:          it.ID,
		Destination: it.TripDetails.Destination,
		StartDate:   it.TripDetails.StartDate,
		EndDate:     it.TripDetails.EndDate,
		DayCount:    len(it.Days),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

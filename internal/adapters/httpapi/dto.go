package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error struct {
		Code      string                             `json:"code"`
		Message   string                             `json:"message"`
		Details   nullable.Nullable[map[string]any] `json:"details,omitempty"`
		RequestId nullable.Nullable[string]          `json:"requestId,omitempty"`
	} `json:"error"`
}

// CreateItineraryRequest is the POST /itineraries body. Omitted preferences
// fall back to domain.DefaultPreferences.
type CreateItineraryRequest struct {
	Destination string                  `json:"destination"`
	PlaceId     string                  `json:"placeId,omitempty"`
	Location    *domain.Coordinates     `json:"location,omitempty"`
	StartDate   *openapi_types.Date     `json:"startDate,omitempty"`
	EndDate     *openapi_types.Date     `json:"endDate,omitempty"`
	Preferences *domain.TripPreferences `json:"preferences,omitempty"`
}

type TripDetails struct {
	Destination string                               `json:"destination"`
	PlaceId     nullable.Nullable[string]             `json:"placeId,omitempty"`
	Location    *domain.Coordinates                  `json:"location,omitempty"`
	StartDate   nullable.Nullable[openapi_types.Date] `json:"startDate,omitempty"`
	EndDate     nullable.Nullable[openapi_types.Date] `json:"endDate,omitempty"`
	Preferences domain.TripPreferences               `json:"preferences"`
}

type DailyItinerary struct {
	Date            openapi_types.Date     `json:"date"`
	Items           []domain.ItineraryItem `json:"items"`
	WeatherForecast *domain.WeatherSummary `json:"weatherForecast,omitempty"`
}

type Itinerary struct {
	Id          string           `json:"id"`
	TripDetails TripDetails      `json:"tripDetails"`
	Days        []DailyItinerary `json:"days"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type ItinerarySummary struct {
	Id          string                               `json:"id"`
	Destination string                               `json:"destination"`
	StartDate   nullable.Nullable[openapi_types.Date] `json:"startDate,omitempty"`
	EndDate     nullable.Nullable[openapi_types.Date] `json:"endDate,omitempty"`
	DayCount    int                                  `json:"dayCount"`
	CreatedAt   time.Time                            `json:"createdAt"`
	UpdatedAt   time.Time                            `json:"updatedAt"`
}

type ItineraryResponse struct {
	Itinerary Itinerary `json:"itinerary"`
}

type ListItinerariesResponse struct {
	Itineraries []ItinerarySummary `json:"itineraries"`
}

type AlternativesResponse struct {
	Alternatives []domain.Activity `json:"alternatives"`
}

func (r CreateItineraryRequest) toDomain() domain.TripDetails {
	td := domain.TripDetails{
		Destination: r.Destination,
		PlaceID:     r.PlaceId,
		Location:    r.Location,
		Preferences: domain.DefaultPreferences(),
	}
	if r.StartDate != nil {
		d := r.StartDate.Time
		td.StartDate = &d
	}
	if r.EndDate != nil {
		d := r.EndDate.Time
		td.EndDate = &d
	}
	if r.Preferences != nil {
		td.Preferences = *r.Preferences
	}
	return td
}

func itineraryFromDomain(it domain.Itinerary) Itinerary {
	td := it.TripDetails
	out := Itinerary{
		Id: string(it.ID),
		TripDetails: TripDetails{
			Destination: td.Destination,
			PlaceId:     nullableString(td.PlaceID),
			Location:    td.Location,
			StartDate:   nullableDate(td.StartDate),
			EndDate:     nullableDate(td.EndDate),
			Preferences: td.Preferences,
		},
		Days:      make([]DailyItinerary, 0, len(it.Days)),
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
	for _, d := range it.Days {
		items := d.Items
		if items == nil {
			items = []domain.ItineraryItem{}
		}
		out.Days = append(out.Days, DailyItinerary{
			Date:            openapi_types.Date{Time: d.Date.UTC()},
			Items:           items,
			WeatherForecast: d.Weather,
		})
	}
	return out
}

func summaryFromDomain(s domain.ItinerarySummary) ItinerarySummary {
	return ItinerarySummary{
		Id:          string(s.ID),
		Destination: s.Destination,
		StartDate:   nullableDate(s.StartDate),
		EndDate:     nullableDate(s.EndDate),
		DayCount:    s.DayCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func nullableString(s string) nullable.Nullable[string] {
	var out nullable.Nullable[string]
	if s != "" {
		out.Set(s)
	}
	return out
}

func nullableDate(p *time.Time) nullable.Nullable[openapi_types.Date] {
	var out nullable.Nullable[openapi_types.Date]
	if p != nil {
		out.Set(openapi_types.Date{Time: p.UTC()})
	}
	return out
}

package planner

import (
	"fmt"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// MaxTripDays bounds the length of a single generated itinerary.
const MaxTripDays = 60

// ValidateTrip checks that a trip can be planned.
func ValidateTrip(t domain.TripDetails) error {
	details := map[string]string{}

	if t.StartDate == nil {
		details["startDate"] = "is required"
	}
	if t.EndDate == nil {
		details["endDate"] = "is required"
	}
	if t.StartDate != nil && t.EndDate != nil {
		switch days := domain.TripDayCount(*t.StartDate, *t.EndDate); {
		case days < 1:
			details["endDate"] = "must not be before startDate"
		case days > MaxTripDays:
			details["endDate"] = fmt.Sprintf("trip must not exceed %d days", MaxTripDays)
		}
	}
	if t.PlaceID == "" && t.Location == nil {
		details["placeId"] = "placeId or location is required"
	}
	if t.Location != nil {
		if t.Location.Lat < -90 || t.Location.Lat > 90 || t.Location.Lng < -180 || t.Location.Lng > 180 {
			details["location"] = "must be a valid latitude/longitude"
		}
	}

	p := t.Preferences
	if p.TripStyle != "" && !p.TripStyle.Valid() {
		details["preferences.tripStyle"] = "must be one of Relaxed, Balanced, Packed"
	}
	if p.Budget != "" && !p.Budget.Valid() {
		details["preferences.budget"] = "must be one of Economy, Mid-range, Premium"
	}
	if p.Companions != "" && !p.Companions.Valid() {
		details["preferences.companions"] = "must be one of Solo, Couple, Family, Friends"
	}
	for interest, w := range p.Interests {
		key := "preferences.interests." + string(interest)
		if _, known := searchCategory[interest]; !known {
			details[key] = "unknown interest"
			continue
		}
		if w < domain.MinInterestWeight || w > domain.MaxInterestWeight {
			details[key] = fmt.Sprintf("must be between %d and %d", domain.MinInterestWeight, domain.MaxInterestWeight)
		}
	}
	if wd := p.Mobility.WalkingDistance; wd != 0 && (wd < domain.MinWalkingDistanceMeters || wd > domain.MaxWalkingDistanceMeters) {
		details["preferences.mobility.walkingDistance"] = fmt.Sprintf("must be between %d and %d meters", domain.MinWalkingDistanceMeters, domain.MaxWalkingDistanceMeters)
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

// ValidateActivity checks a caller-supplied replacement activity.
func ValidateActivity(a domain.Activity) error {
	details := map[string]string{}

	if a.ID == "" {
		details["id"] = "is required"
	}
	if domain.NormalizeHumanName(a.Name) == "" {
		details["name"] = "is required"
	}
	if a.Duration <= 0 {
		details["duration"] = "must be greater than 0"
	}
	if a.Rating != nil && (*a.Rating < domain.MinRating || *a.Rating > domain.MaxRating) {
		details["rating"] = fmt.Sprintf("must be between %g and %g", domain.MinRating, domain.MaxRating)
	}
	if a.Price != nil && (*a.Price < domain.MinPriceTier || *a.Price > domain.MaxPriceTier) {
		details["price"] = fmt.Sprintf("must be between %d and %d", domain.MinPriceTier, domain.MaxPriceTier)
	}
	c := a.Coordinates
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		details["coordinates"] = "must be a valid latitude/longitude"
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

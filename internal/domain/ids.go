package domain

// ItineraryID is an internal identifier for a generated itinerary.
type ItineraryID string

// ActivityID identifies a candidate activity. Its format is controlled by the
// candidate provider (place IDs, event IDs, catalog slugs).
type ActivityID string

// Package geo holds great-circle helpers shared by the catalog and the commute estimator.
package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6371000.0

func latLng(c domain.Coordinates) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lng)
}

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(a, b domain.Coordinates) float64 {
	return latLng(a).Distance(latLng(b)).Radians() * EarthRadiusMeters
}

// Within reports whether p lies within radiusMeters of center.
func Within(center, p domain.Coordinates, radiusMeters float64) bool {
	return latLng(center).Distance(latLng(p)) <= s1.Angle(radiusMeters/EarthRadiusMeters)
}

package planner

import "github.com/triply-travel/itinerary-api/internal/domain"

// Score rates an activity against a preference profile: twice the weight of the
// interest its category maps to, plus its rating. Equal scores are not broken here.
func Score(a domain.Activity, prefs domain.TripPreferences) float64 {
	var score float64
	if interest, ok := InterestFor(a.Category); ok {
		if w := prefs.Weight(interest); w > 0 {
			score += float64(w * 2)
		}
	}
	return score + a.RatingOrZero()
}

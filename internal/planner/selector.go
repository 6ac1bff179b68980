package planner

import (
	"sort"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

type rankedActivity struct {
	activity domain.Activity
	category string
	score    float64
}

// WithinBudget reports whether the activity's price tier is allowed by the budget.
// Activities without a known price always pass.
func WithinBudget(a domain.Activity, b domain.Budget) bool {
	if a.Price == nil {
		return true
	}
	for _, tier := range PriceTiersFor(b) {
		if *a.Price == tier {
			return true
		}
	}
	return false
}

// FilterByBudget keeps the candidates allowed by the budget, in order.
func FilterByBudget(candidates []domain.Activity, b domain.Budget) []domain.Activity {
	out := make([]domain.Activity, 0, len(candidates))
	for _, a := range candidates {
		if WithinBudget(a, b) {
			out = append(out, a)
		}
	}
	return out
}

// Select picks the activities for one day.
//
// Candidates are budget filtered and de-duplicated by ID, ranked by Score
// (stable, so equal scores keep input order), then chosen in two passes:
// first one activity per strongly weighted interest (weight >= 4) without
// repeating a category, then the best remaining activities until the trip
// style's daily budget is reached.
//
// dayIndex and totalDays do not influence the result today; every day of a trip
// gets the same policy.
func Select(candidates []domain.Activity, prefs domain.TripPreferences, dayIndex, totalDays int) []domain.Activity {
	_, _ = dayIndex, totalDays

	limit := ActivitiesPerDay(prefs.TripStyle)
	pool := rank(uniqueByID(FilterByBudget(candidates, prefs.Budget)), prefs)

	selected := make([]domain.Activity, 0, min(limit, len(pool)))
	usedCategories := make(map[string]bool)

	for _, interest := range domain.Interests {
		if len(selected) >= limit {
			break
		}
		if prefs.Weight(interest) < diversityWeight {
			continue
		}
		idx := -1
		for i, c := range pool {
			if got, ok := InterestFor(c.category); ok && got == interest && !usedCategories[c.category] {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		selected = append(selected, pool[idx].activity)
		usedCategories[pool[idx].category] = true
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	for len(selected) < limit && len(pool) > 0 {
		selected = append(selected, pool[0].activity)
		pool = pool[1:]
	}

	return selected
}

func rank(candidates []domain.Activity, prefs domain.TripPreferences) []rankedActivity {
	out := make([]rankedActivity, 0, len(candidates))
	for _, a := range candidates {
		out = append(out, rankedActivity{
			activity: a,
			category: domain.NormalizeCategory(a.Category),
			score:    Score(a, prefs),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})
	return out
}

func uniqueByID(candidates []domain.Activity) []domain.Activity {
	seen := make(map[domain.ActivityID]bool, len(candidates))
	out := make([]domain.Activity, 0, len(candidates))
	for _, a := range candidates {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

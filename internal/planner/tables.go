package planner

import "github.com/triply-travel/itinerary-api/internal/domain"

// categoryInterest maps provider categories onto the traveler's interests.
// Categories not listed here earn no interest bonus.
var categoryInterest = map[string]domain.Interest{
	"restaurant":     domain.InterestFood,
	"cafe":           domain.InterestFood,
	"bar":            domain.InterestNightlife,
	"night_club":     domain.InterestNightlife,
	"museum":         domain.InterestCulture,
	"art_gallery":    domain.InterestCulture,
	"park":           domain.InterestNature,
	"shopping_mall":  domain.InterestShopping,
	"clothing_store": domain.InterestShopping,
}

// searchCategory is the category hint sent to the places provider for each interest.
var searchCategory = map[domain.Interest]string{
	domain.InterestFood:      "restaurant",
	domain.InterestCulture:   "museum",
	domain.InterestNature:    "park",
	domain.InterestNightlife: "bar",
	domain.InterestShopping:  "shopping_mall",
}

var budgetPriceTiers = map[domain.Budget][]int{
	domain.BudgetEconomy:  {0, 1},
	domain.BudgetMidRange: {0, 1, 2},
	domain.BudgetPremium:  {0, 1, 2, 3, 4},
}

var activitiesPerDay = map[domain.TripStyle]int{
	domain.TripStyleRelaxed:  3,
	domain.TripStyleBalanced: 5,
	domain.TripStylePacked:   7,
}

// Minutes after midnight.
var dayStart = map[domain.TripStyle]int{
	domain.TripStyleRelaxed:  10 * 60,
	domain.TripStyleBalanced: 9 * 60,
	domain.TripStylePacked:   8 * 60,
}

var bufferBetween = map[domain.TripStyle]int{
	domain.TripStyleRelaxed:  60,
	domain.TripStyleBalanced: 30,
	domain.TripStylePacked:   15,
}

const (
	defaultDayStartMinutes = 9 * 60
	defaultBufferMinutes   = 15

	// diversityWeight is the interest weight from which a day tries to include
	// at least one activity of that interest.
	diversityWeight = 4
	// searchWeight is the interest weight above which candidates are fetched for it.
	searchWeight = 2
)

// InterestFor returns the interest a category counts toward.
func InterestFor(category string) (domain.Interest, bool) {
	i, ok := categoryInterest[domain.NormalizeCategory(category)]
	return i, ok
}

// SearchCategory returns the places category queried for an interest.
func SearchCategory(i domain.Interest) string {
	return searchCategory[i]
}

// ActivitiesPerDay is the activity budget for a trip style.
// Unknown styles get the Balanced budget.
func ActivitiesPerDay(style domain.TripStyle) int {
	if n, ok := activitiesPerDay[style]; ok {
		return n
	}
	return activitiesPerDay[domain.TripStyleBalanced]
}

// DayStartMinutes is the first activity's start time, in minutes after midnight.
func DayStartMinutes(style domain.TripStyle) int {
	if m, ok := dayStart[style]; ok {
		return m
	}
	return defaultDayStartMinutes
}

// BufferMinutes is the slack inserted between two consecutive activities.
func BufferMinutes(style domain.TripStyle) int {
	if m, ok := bufferBetween[style]; ok {
		return m
	}
	return defaultBufferMinutes
}

// PriceTiersFor returns the price tiers allowed by a budget.
// An unset budget allows every tier.
func PriceTiersFor(b domain.Budget) []int {
	if tiers, ok := budgetPriceTiers[b]; ok {
		return tiers
	}
	return budgetPriceTiers[domain.BudgetPremium]
}

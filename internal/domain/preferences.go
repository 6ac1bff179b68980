package domain

import "time"

// TripStyle is the pacing policy: it controls how many activities a day holds,
// when the day starts and how much slack sits between activities.
type TripStyle string

const (
	TripStyleRelaxed  TripStyle = "Relaxed"
	TripStyleBalanced TripStyle = "Balanced"
	TripStylePacked   TripStyle = "Packed"
)

// Valid reports whether s is one of the known trip styles.
func (s TripStyle) Valid() bool {
	switch s {
	case TripStyleRelaxed, TripStyleBalanced, TripStylePacked:
		return true
	default:
		return false
	}
}

type Interest string

const (
	InterestFood      Interest = "food"
	InterestCulture   Interest = "culture"
	InterestNature    Interest = "nature"
	InterestNightlife Interest = "nightlife"
	InterestShopping  Interest = "shopping"
)

// Interests lists every interest in the order the planner walks them.
var Interests = []Interest{
	InterestFood,
	InterestCulture,
	InterestNature,
	InterestNightlife,
	InterestShopping,
}

const (
	MinInterestWeight = 1
	MaxInterestWeight = 5
)

type Budget string

const (
	BudgetEconomy  Budget = "Economy"
	BudgetMidRange Budget = "Mid-range"
	BudgetPremium  Budget = "Premium"
)

func (b Budget) Valid() bool {
	switch b {
	case BudgetEconomy, BudgetMidRange, BudgetPremium:
		return true
	default:
		return false
	}
}

type Companions string

const (
	CompanionsSolo    Companions = "Solo"
	CompanionsCouple  Companions = "Couple"
	CompanionsFamily  Companions = "Family"
	CompanionsFriends Companions = "Friends"
)

func (c Companions) Valid() bool {
	switch c {
	case CompanionsSolo, CompanionsCouple, CompanionsFamily, CompanionsFriends:
		return true
	default:
		return false
	}
}

const (
	MinWalkingDistanceMeters     = 500
	MaxWalkingDistanceMeters     = 5000
	DefaultWalkingDistanceMeters = 2000
)

type Mobility struct {
	WalkingDistance int  `json:"walkingDistance"` // meters
	Accessibility   bool `json:"accessibility"`
}

// RadiusMeters is the search radius used for candidate lookups.
// Zero means "not set" and falls back to DefaultWalkingDistanceMeters.
func (m Mobility) RadiusMeters() int {
	if m.WalkingDistance <= 0 {
		return DefaultWalkingDistanceMeters
	}
	return m.WalkingDistance
}

// TripPreferences is the traveler's weighted preference profile.
//
// Interests maps an interest to a weight in [1,5]. An interest that is absent
// from the map is treated as "not interested" (weight 0).
type TripPreferences struct {
	TripStyle  TripStyle        `json:"tripStyle"`
	Interests  map[Interest]int `json:"interests"`
	Budget     Budget           `json:"budget"`
	Companions Companions       `json:"companions"`
	Mobility   Mobility         `json:"mobility"`
}

// Weight returns the weight for an interest, or 0 if the traveler did not rate it.
func (p TripPreferences) Weight(i Interest) int {
	return p.Interests[i]
}

// DefaultPreferences mirrors the defaults offered to a traveler before they
// adjust anything.
func DefaultPreferences() TripPreferences {
	return TripPreferences{
		TripStyle: TripStyleBalanced,
		Interests: map[Interest]int{
			InterestFood:      3,
			InterestCulture:   3,
			InterestNature:    3,
			InterestNightlife: 3,
			InterestShopping:  3,
		},
		Budget:     BudgetMidRange,
		Companions: CompanionsSolo,
		Mobility: Mobility{
			WalkingDistance: DefaultWalkingDistanceMeters,
		},
	}
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TripDetails is what the traveler asked for. The planner only reads it.
type TripDetails struct {
	Destination string `json:"destination"`
	// PlaceID is the geocoded place reference for the destination.
	PlaceID string `json:"placeId,omitempty"`
	// Location is the destination center; when nil it is resolved from PlaceID.
	Location *Coordinates `json:"location,omitempty"`

	StartDate *time.Time `json:"startDate,omitempty"` // date-only semantics
	EndDate   *time.Time `json:"endDate,omitempty"`   // date-only semantics

	Preferences TripPreferences `json:"preferences"`
}

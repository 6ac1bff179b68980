package planner_test

import (
	"testing"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/planner"
)

func TestScore_InterestWeightAndRating(t *testing.T) {
	t.Parallel()

	prefs := domain.TripPreferences{Interests: map[domain.Interest]int{domain.InterestFood: 5}}
	a := domain.Activity{ID: "a", Category: "restaurant", Rating: domain.Float64(4.5)}

	if got := planner.Score(a, prefs); got != 14.5 {
		t.Fatalf("score=%v, want 14.5", got)
	}
}

func TestScore_UnmappedOrUnratedInterest(t *testing.T) {
	t.Parallel()

	prefs := domain.TripPreferences{Interests: map[domain.Interest]int{domain.InterestFood: 5}}

	if got := planner.Score(domain.Activity{Category: "tourist_attraction", Rating: domain.Float64(4)}, prefs); got != 4 {
		t.Fatalf("unmapped score=%v, want 4", got)
	}
	if got := planner.Score(domain.Activity{Category: "museum", Rating: domain.Float64(4)}, prefs); got != 4 {
		t.Fatalf("absent interest score=%v, want 4", got)
	}
	if got := planner.Score(domain.Activity{Category: "cafe"}, prefs); got != 10 {
		t.Fatalf("no rating score=%v, want 10", got)
	}
}

func TestInterestFor_NormalizesCategory(t *testing.T) {
	t.Parallel()

	got, ok := planner.InterestFor("  Night Club ")
	if !ok || got != domain.InterestNightlife {
		t.Fatalf("InterestFor=%v,%v", got, ok)
	}
	if _, ok := planner.InterestFor("event"); ok {
		t.Fatalf("event should not map to an interest")
	}
}

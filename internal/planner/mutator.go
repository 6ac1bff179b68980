package planner

import (
	"context"
	"sort"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// RegenerateDay re-plans a single day from a fresh candidate fetch. Only
// Days[dayIndex].Items changes; the date, weather and every other day are carried
// over untouched.
func (p *Planner) RegenerateDay(ctx context.Context, it domain.Itinerary, dayIndex int) (domain.Itinerary, error) {
	if err := checkIndex("dayIndex", dayIndex, len(it.Days)); err != nil {
		return domain.Itinerary{}, err
	}

	pool := p.candidatePool(ctx, it.TripDetails)
	items, err := p.planDay(ctx, pool, it.TripDetails.Preferences, dayIndex, len(it.Days))
	if err != nil {
		return domain.Itinerary{}, err
	}

	out := it
	out.Days = append([]domain.DailyItinerary(nil), it.Days...)
	out.Days[dayIndex].Items = items
	out.UpdatedAt = p.clock.Now()
	return out, nil
}

// SwapActivity replaces the activity at (dayIndex, activityIndex) and refreshes
// the commute into the swapped item and into the item after it. Timing follows
// the planner's SwapPolicy.
func (p *Planner) SwapActivity(ctx context.Context, it domain.Itinerary, dayIndex, activityIndex int, replacement domain.Activity) (domain.Itinerary, error) {
	if err := checkIndex("dayIndex", dayIndex, len(it.Days)); err != nil {
		return domain.Itinerary{}, err
	}
	items := it.Days[dayIndex].Items
	if err := checkIndex("activityIndex", activityIndex, len(items)); err != nil {
		return domain.Itinerary{}, err
	}
	for i, item := range items {
		if i != activityIndex && item.Activity.ID == replacement.ID {
			return domain.Itinerary{}, &ValidationError{Details: map[string]string{
				"id": "activity is already scheduled on this day",
			}}
		}
	}

	next := append([]domain.ItineraryItem(nil), items...)
	next[activityIndex].Activity = replacement
	if p.opts.SwapPolicy == SwapReflowDay {
		next = reflow(next, it.TripDetails.Preferences.TripStyle)
	}

	if activityIndex > 0 {
		info, err := p.augmenter.Commute(ctx, next[activityIndex-1].Activity.Coordinates, replacement.Coordinates)
		if err != nil {
			return domain.Itinerary{}, err
		}
		next[activityIndex].CommuteFromPrevious = &info
	}
	if activityIndex+1 < len(next) {
		info, err := p.augmenter.Commute(ctx, replacement.Coordinates, next[activityIndex+1].Activity.Coordinates)
		if err != nil {
			return domain.Itinerary{}, err
		}
		next[activityIndex+1].CommuteFromPrevious = &info
	}

	out := it
	out.Days = append([]domain.DailyItinerary(nil), it.Days...)
	out.Days[dayIndex].Items = next
	out.UpdatedAt = p.clock.Now()
	return out, nil
}

// DefaultAlternativeCount is how many alternatives are offered when the caller
// does not ask for a specific number.
const DefaultAlternativeCount = 3

// Alternatives lists nearby places of the same category as the activity at
// (dayIndex, activityIndex), best rated first, excluding the current one.
func (p *Planner) Alternatives(ctx context.Context, it domain.Itinerary, dayIndex, activityIndex, count int) ([]domain.Activity, error) {
	if err := checkIndex("dayIndex", dayIndex, len(it.Days)); err != nil {
		return nil, err
	}
	items := it.Days[dayIndex].Items
	if err := checkIndex("activityIndex", activityIndex, len(items)); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = DefaultAlternativeCount
	}
	current := items[activityIndex].Activity

	center, err := p.center(ctx, it.TripDetails)
	if err != nil {
		return nil, err
	}
	found, err := p.places.Nearby(ctx, center, it.TripDetails.Preferences.Mobility.RadiusMeters(), current.Category)
	if err != nil {
		return nil, &ProviderError{Provider: "places", Err: err}
	}

	scheduled := make(map[domain.ActivityID]bool, len(items))
	for _, item := range items {
		scheduled[item.Activity.ID] = true
	}
	out := make([]domain.Activity, 0, len(found))
	for _, a := range uniqueByID(found) {
		if scheduled[a.ID] {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RatingOrZero() > out[j].RatingOrZero()
	})
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/triply-travel/itinerary-api/internal/domain"
)

// Schedule lays activities out on the day's clock in the given order.
//
// The first activity starts at the style's day start; each following one starts
// after the previous end plus the style's buffer. Items come back without
// commute information. Schedule is a pure function of its inputs.
func Schedule(activities []domain.Activity, style domain.TripStyle) []domain.ItineraryItem {
	items := make([]domain.ItineraryItem, 0, len(activities))
	clock := DayStartMinutes(style)
	for i, a := range activities {
		if i > 0 {
			clock += BufferMinutes(style)
		}
		start := clock
		clock += max(a.Duration, 0)
		items = append(items, domain.ItineraryItem{
			Activity:  a,
			StartTime: FormatClock(start),
			EndTime:   FormatClock(clock),
		})
	}
	return items
}

// FormatClock renders minutes after midnight as H:MM (24h, no leading zero on
// the hour). Hours are not wrapped, so a day running past midnight reads 24:30.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ParseClock is the inverse of FormatClock.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("invalid clock hour %q", s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid clock minute %q", s)
	}
	return hours*60 + mins, nil
}

// reflow re-derives start/end times of existing items from their activities'
// durations, keeping commute information as is.
func reflow(items []domain.ItineraryItem, style domain.TripStyle) []domain.ItineraryItem {
	activities := make([]domain.Activity, 0, len(items))
	for _, it := range items {
		activities = append(activities, it.Activity)
	}
	out := Schedule(activities, style)
	for i := range out {
		out[i].CommuteFromPrevious = items[i].CommuteFromPrevious
	}
	return out
}

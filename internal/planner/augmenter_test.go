package planner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/planner"
)

func scheduledDay() []domain.ItineraryItem {
	return planner.Schedule([]domain.Activity{
		act("a", "park", 4, 0, 60),
		act("bb", "museum", 4, 1, 60),
		act("ccc", "cafe", 4, 1, 30),
	}, domain.TripStyleBalanced)
}

func TestAugment_AttachesCommuteAfterFirstItem(t *testing.T) {
	t.Parallel()

	dirs := &fakeDirections{duration: 7}
	a := planner.NewAugmenter(dirs, planner.CommuteZeroFallback, 2)

	in := scheduledDay()
	out, err := a.Augment(context.Background(), in)
	if err != nil {
		t.Fatalf("Augment: %v", err)
	}
	if out[0].CommuteFromPrevious != nil {
		t.Fatalf("item 0 has commute")
	}
	for i := 1; i < len(out); i++ {
		c := out[i].CommuteFromPrevious
		if c == nil || c.Duration != 7 || c.Distance != 560 || c.Mode != domain.TravelModeWalking || c.Degraded {
			t.Fatalf("item %d commute=%+v", i, c)
		}
		if out[i].Activity.ID != in[i].Activity.ID {
			t.Fatalf("order changed at %d", i)
		}
	}
	if in[1].CommuteFromPrevious != nil {
		t.Fatalf("input was modified")
	}
	if dirs.Calls() != 2 {
		t.Fatalf("calls=%d, want 2", dirs.Calls())
	}
}

func TestAugment_ZeroFallbackOnProviderError(t *testing.T) {
	t.Parallel()

	a := planner.NewAugmenter(&fakeDirections{err: errBoom}, planner.CommuteZeroFallback, 2)
	out, err := a.Augment(context.Background(), scheduledDay())
	if err != nil {
		t.Fatalf("Augment: %v", err)
	}
	for i := 1; i < len(out); i++ {
		c := out[i].CommuteFromPrevious
		if c == nil || c.Duration != 0 || c.Distance != 0 || c.Mode != domain.TravelModeWalking || !c.Degraded {
			t.Fatalf("item %d commute=%+v, want degraded zero", i, c)
		}
	}
}

func TestAugment_FailFastReturnsProviderUnavailable(t *testing.T) {
	t.Parallel()

	a := planner.NewAugmenter(&fakeDirections{err: errBoom}, planner.CommuteFailFast, 2)
	_, err := a.Augment(context.Background(), scheduledDay())
	if !errors.Is(err, planner.ErrProviderUnavailable) {
		t.Fatalf("err=%v, want ErrProviderUnavailable", err)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("err=%v, want wrapped cause", err)
	}
}

func TestAugment_EmptyAndSingle(t *testing.T) {
	t.Parallel()

	dirs := &fakeDirections{duration: 3}
	a := planner.NewAugmenter(dirs, planner.CommuteZeroFallback, 1)

	out, err := a.Augment(context.Background(), nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("empty: out=%v err=%v", out, err)
	}
	out, err = a.Augment(context.Background(), scheduledDay()[:1])
	if err != nil || len(out) != 1 || out[0].CommuteFromPrevious != nil {
		t.Fatalf("single: out=%+v err=%v", out, err)
	}
	if dirs.Calls() != 0 {
		t.Fatalf("calls=%d, want 0", dirs.Calls())
	}
}

package planner

import (
	"fmt"
	"strings"
)

// SwapPolicy decides what happens to the day's clock when an activity is swapped.
type SwapPolicy string

const (
	// SwapKeepSlot keeps the swapped slot's start and end times even if the
	// replacement's duration differs.
	SwapKeepSlot SwapPolicy = "keep-slot"
	// SwapReflowDay re-derives every start/end time of the day from durations.
	SwapReflowDay SwapPolicy = "reflow-day"
)

// CommuteFailurePolicy decides what a failed commute lookup does to the operation.
type CommuteFailurePolicy string

const (
	// CommuteZeroFallback attaches a zero commute flagged Degraded and carries on.
	CommuteZeroFallback CommuteFailurePolicy = "zero"
	// CommuteFailFast fails the whole operation with ErrProviderUnavailable.
	CommuteFailFast CommuteFailurePolicy = "fail"
)

const DefaultConcurrency = 4

type Options struct {
	// Concurrency bounds how many days (and commute pairs per day) are planned at once.
	Concurrency    int
	SwapPolicy     SwapPolicy
	CommuteFailure CommuteFailurePolicy
}

func DefaultOptions() Options {
	return Options{
		Concurrency:    DefaultConcurrency,
		SwapPolicy:     SwapKeepSlot,
		CommuteFailure: CommuteZeroFallback,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Concurrency <= 0 {
		o.Concurrency = d.Concurrency
	}
	if o.SwapPolicy == "" {
		o.SwapPolicy = d.SwapPolicy
	}
	if o.CommuteFailure == "" {
		o.CommuteFailure = d.CommuteFailure
	}
	return o
}

func ParseSwapPolicy(s string) (SwapPolicy, error) {
	switch p := SwapPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return SwapKeepSlot, nil
	case SwapKeepSlot, SwapReflowDay:
		return p, nil
	default:
		return "", fmt.Errorf("unknown swap policy %q (want %s or %s)", s, SwapKeepSlot, SwapReflowDay)
	}
}

func ParseCommuteFailurePolicy(s string) (CommuteFailurePolicy, error) {
	switch p := CommuteFailurePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return CommuteZeroFallback, nil
	case CommuteZeroFallback, CommuteFailFast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown commute failure policy %q (want %s or %s)", s, CommuteZeroFallback, CommuteFailFast)
	}
}

package planner

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/directions"
)

// CommuteMode is the travel mode used between consecutive activities.
const CommuteMode = domain.TravelModeWalking

// Augmenter attaches commute estimates to scheduled items.
type Augmenter struct {
	directions  directions.Provider
	failure     CommuteFailurePolicy
	concurrency int
}

func NewAugmenter(p directions.Provider, failure CommuteFailurePolicy, concurrency int) *Augmenter {
	if failure == "" {
		failure = CommuteZeroFallback
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Augmenter{directions: p, failure: failure, concurrency: concurrency}
}

// Augment returns a copy of items where every item after the first carries the
// commute from its predecessor. The first item never has one.
func (a *Augmenter) Augment(ctx context.Context, items []domain.ItineraryItem) ([]domain.ItineraryItem, error) {
	out := make([]domain.ItineraryItem, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out, nil
	}
	out[0].CommuteFromPrevious = nil

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i := 1; i < len(items); i++ {
		from, to := items[i-1].Activity.Coordinates, items[i].Activity.Coordinates
		g.Go(func() error {
			info, err := a.Commute(gctx, from, to)
			if err != nil {
				return err
			}
			out[i].CommuteFromPrevious = &info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Commute looks up one leg. Under CommuteZeroFallback a provider failure yields a
// zero CommuteInfo flagged Degraded; under CommuteFailFast it is returned as a
// *ProviderError. Cancellation of ctx is always returned as is.
func (a *Augmenter) Commute(ctx context.Context, from, to domain.Coordinates) (domain.CommuteInfo, error) {
	route, err := a.directions.Directions(ctx, from, to, CommuteMode)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.CommuteInfo{}, ctxErr
		}
		if a.failure == CommuteFailFast {
			return domain.CommuteInfo{}, &ProviderError{Provider: "directions", Err: err}
		}
		log.Printf("planner: commute lookup failed, using zero estimate: %v", err)
		return domain.CommuteInfo{Mode: CommuteMode, Degraded: true}, nil
	}

	mode := route.Mode
	if mode == "" {
		mode = CommuteMode
	}
	return domain.CommuteInfo{
		Duration: max(route.DurationMinutes, 0),
		Distance: max(route.DistanceMeters, 0),
		Mode:     mode,
	}, nil
}

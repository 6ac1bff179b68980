package itineraryrepo

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

// Repo is an in-memory implementation of itineraryrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.ItineraryID]domain.Itinerary
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.ItineraryID]domain.Itinerary),
	}
}

func (r *Repo) Create(ctx context.Context, it domain.Itinerary) error {
	_ = ctx
	if it.ID == "" {
		return itineraryrepo.ErrAlreadyExists // treat empty ID as invalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[it.ID]; ok {
		return itineraryrepo.ErrAlreadyExists
	}
	r.byID[it.ID] = cloneItinerary(it)
	return nil
}

func (r *Repo) Save(ctx context.Context, it domain.Itinerary) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[it.ID]; !ok {
		return itineraryrepo.ErrNotFound
	}
	r.byID[it.ID] = cloneItinerary(it)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.byID[id]
	if !ok {
		return domain.Itinerary{}, itineraryrepo.ErrNotFound
	}
	return cloneItinerary(it), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.ItinerarySummary, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ItinerarySummary, 0, len(r.byID))
	for _, it := range r.byID {
		s := it.Summary()
		s.StartDate = cloneTimePtr(s.StartDate)
		s.EndDate = cloneTimePtr(s.EndDate)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneItinerary(in domain.Itinerary) domain.Itinerary {
	out := in
	out.TripDetails = cloneTripDetails(in.TripDetails)
	if in.Days != nil {
		out.Days = make([]domain.DailyItinerary, len(in.Days))
		for i, d := range in.Days {
			out.Days[i] = cloneDay(d)
		}
	}
	return out
}

func cloneTripDetails(in domain.TripDetails) domain.TripDetails {
	out := in
	out.StartDate = cloneTimePtr(in.StartDate)
	out.EndDate = cloneTimePtr(in.EndDate)
	if in.Location != nil {
		loc := *in.Location
		out.Location = &loc
	}
	out.Preferences.Interests = maps.Clone(in.Preferences.Interests)
	return out
}

func cloneDay(in domain.DailyItinerary) domain.DailyItinerary {
	out := in
	if in.Weather != nil {
		w := *in.Weather
		out.Weather = &w
	}
	if in.Items != nil {
		out.Items = make([]domain.ItineraryItem, len(in.Items))
		for i, item := range in.Items {
			out.Items[i] = cloneItem(item)
		}
	}
	return out
}

func cloneItem(in domain.ItineraryItem) domain.ItineraryItem {
	out := in
	out.Activity = cloneActivity(in.Activity)
	if in.CommuteFromPrevious != nil {
		c := *in.CommuteFromPrevious
		out.CommuteFromPrevious = &c
	}
	return out
}

func cloneActivity(in domain.Activity) domain.Activity {
	out := in
	if in.Rating != nil {
		out.Rating = domain.Float64(*in.Rating)
	}
	if in.Price != nil {
		out.Price = domain.Int(*in.Price)
	}
	if in.IsOutdoor != nil {
		out.IsOutdoor = domain.Bool(*in.IsOutdoor)
	}
	out.OpeningHours = maps.Clone(in.OpeningHours)
	return out
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

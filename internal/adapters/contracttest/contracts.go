package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/triply-travel/itinerary-api/internal/domain"
	idempotencyport "github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
	itineraryrepoport "github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

type CleanupFunc = func()

type ItineraryRepoFactory func(t *testing.T) (itineraryrepoport.Repository, CleanupFunc)
type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idempotencyport.Fingerprint{
		Key:      idempotencyport.Key("k-" + uuid.NewString()),
		Method:   "POST",
		Route:    "/itineraries",
		BodyHash: "abc",
	}
	if _, ok, err := store.Get(ctx, fp); err != nil || ok {
		t.Fatalf("Get before Put: ok=%v err=%v", ok, err)
	}

	rec := idempotencyport.Record{
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"id":"it-1"}`),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(got.Body) != `{"id":"it-1"}` || got.ContentType != "application/json" || got.StatusCode != 201 {
		t.Fatalf("unexpected record: %+v", got)
	}

	other := fp
	other.BodyHash = "def"
	if _, ok, err := store.Get(ctx, other); err != nil || ok {
		t.Fatalf("different body hash must not match: ok=%v err=%v", ok, err)
	}

	// Overwrite semantics.
	rec2 := rec
	rec2.Body = []byte(`{"id":"it-2"}`)
	if err := store.Put(ctx, fp, rec2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, ok, err = store.Get(ctx, fp)
	if err != nil || !ok || string(got.Body) != `{"id":"it-2"}` {
		t.Fatalf("expected overwritten record, got ok=%v err=%v body=%q", ok, err, string(got.Body))
	}
}

func sampleItinerary(id domain.ItineraryID, created time.Time) domain.Itinerary {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	prefs := domain.DefaultPreferences()
	prefs.Interests[domain.InterestFood] = 5

	item := func(aid, category string, startAt, endAt string) domain.ItineraryItem {
		return domain.ItineraryItem{
			Activity: domain.Activity{
				ID:          domain.ActivityID(aid),
				Name:        "Activity " + aid,
				Address:     "1 Rue Example, Paris",
				PlaceID:     "place-" + aid,
				Category:    category,
				Rating:      domain.Float64(4.5),
				Price:       domain.Int(2),
				Coordinates: domain.Coordinates{Lat: 48.8606, Lng: 2.3376},
				Duration:    60,
				IsOutdoor:   domain.Bool(false),
			},
			StartTime: startAt,
			EndTime:   endAt,
		}
	}
	second := item("a2", "museum", "10:30", "11:30")
	second.CommuteFromPrevious = &domain.CommuteInfo{Duration: 6, Distance: 480, Mode: domain.TravelModeWalking}

	return domain.Itinerary{
		ID: id,
		TripDetails: domain.TripDetails{
			Destination: "Paris",
			PlaceID:     "paris",
			Location:    &domain.Coordinates{Lat: 48.8566, Lng: 2.3522},
			StartDate:   &start,
			EndDate:     &end,
			Preferences: prefs,
		},
		Days: []domain.DailyItinerary{
			{
				Date:  start,
				Items: []domain.ItineraryItem{item("a1", "restaurant", "9:00", "10:00"), second},
				Weather: &domain.WeatherSummary{
					Temperature: 21, Condition: "Sunny", Icon: "sun", Advisory: domain.WeatherAdvisoryNone,
				},
			},
			{Date: end, Items: []domain.ItineraryItem{}},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func RunItineraryRepo(t *testing.T, newRepo ItineraryRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	base := time.Now().UTC().Truncate(time.Millisecond)
	id1 := domain.ItineraryID(uuid.NewString())
	id2 := domain.ItineraryID(uuid.NewString())

	it1 := sampleItinerary(id1, base)
	if err := repo.Create(ctx, it1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, it1); !errors.Is(err, itineraryrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, id1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != id1 || got.TripDetails.Destination != "Paris" || len(got.Days) != 2 {
		t.Fatalf("unexpected itinerary: %+v", got)
	}
	if !got.CreatedAt.Equal(base) {
		t.Fatalf("createdAt=%v, want %v", got.CreatedAt, base)
	}
	if w := got.TripDetails.Preferences.Weight(domain.InterestFood); w != 5 {
		t.Fatalf("food weight=%d", w)
	}
	items := got.Days[0].Items
	if len(items) != 2 || items[0].Activity.ID != "a1" || items[1].StartTime != "10:30" {
		t.Fatalf("items=%+v", items)
	}
	if items[0].CommuteFromPrevious != nil {
		t.Fatalf("item 0 commute=%+v", items[0].CommuteFromPrevious)
	}
	if c := items[1].CommuteFromPrevious; c == nil || c.Distance != 480 || c.Mode != domain.TravelModeWalking {
		t.Fatalf("item 1 commute=%+v", c)
	}
	if r := items[0].Activity.Rating; r == nil || *r != 4.5 {
		t.Fatalf("rating=%v", r)
	}
	if w := got.Days[0].Weather; w == nil || w.Condition != "Sunny" {
		t.Fatalf("weather=%+v", w)
	}
	if got.Days[1].Weather != nil || len(got.Days[1].Items) != 0 {
		t.Fatalf("day 1=%+v", got.Days[1])
	}
	if !got.Days[1].Date.Equal(it1.Days[1].Date) {
		t.Fatalf("day 1 date=%v", got.Days[1].Date)
	}

	if _, err := repo.GetByID(ctx, domain.ItineraryID(uuid.NewString())); !errors.Is(err, itineraryrepoport.ErrNotFound) {
		t.Fatalf("GetByID missing err=%v, want ErrNotFound", err)
	}

	updated := got
	updated.Days = append([]domain.DailyItinerary(nil), got.Days...)
	updated.Days[1].Items = []domain.ItineraryItem{got.Days[0].Items[0]}
	updated.UpdatedAt = base.Add(time.Minute)
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = repo.GetByID(ctx, id1)
	if err != nil {
		t.Fatalf("GetByID after Save: %v", err)
	}
	if len(got.Days[1].Items) != 1 || !got.UpdatedAt.Equal(base.Add(time.Minute)) || !got.CreatedAt.Equal(base) {
		t.Fatalf("after save: updated=%v created=%v day1=%+v", got.UpdatedAt, got.CreatedAt, got.Days[1])
	}

	if err := repo.Save(ctx, sampleItinerary(domain.ItineraryID(uuid.NewString()), base)); !errors.Is(err, itineraryrepoport.ErrNotFound) {
		t.Fatalf("Save missing err=%v, want ErrNotFound", err)
	}

	if err := repo.Create(ctx, sampleItinerary(id2, base.Add(time.Second))); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	pos := map[domain.ItineraryID]int{}
	for i, s := range list {
		pos[s.ID] = i
	}
	i1, ok1 := pos[id1]
	i2, ok2 := pos[id2]
	if !ok1 || !ok2 || i1 >= i2 {
		t.Fatalf("list order: %v", list)
	}
	if s := list[i1]; s.DayCount != 2 || s.Destination != "Paris" || s.StartDate == nil {
		t.Fatalf("summary=%+v", s)
	}
}

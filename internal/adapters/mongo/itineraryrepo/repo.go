package itineraryrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

const CollectionName = "itineraries"

// record is the stored shape. Document holds the JSON encoding of the whole
// itinerary; the other fields back List and its sort order.
type record struct {
	ID          string     `bson:"_id"`
	Destination string     `bson:"destination"`
	StartDate   *time.Time `bson:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty"`
	DayCount    int        `bson:"dayCount"`
	Document    string     `bson:"document"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

func toRecord(it domain.Itinerary) (record, error) {
	doc, err := json.Marshal(it)
	if err != nil {
		return record{}, fmt.Errorf("encode itinerary: %w", err)
	}
	s := it.Summary()
	return record{
		ID:          string(it.ID),
		Destination: s.Destination,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		DayCount:    s.DayCount,
		Document:    string(doc),
		CreatedAt:   it.CreatedAt.UTC(),
		UpdatedAt:   it.UpdatedAt.UTC(),
	}, nil
}

// Repo is a MongoDB implementation of itineraryrepo.Repository.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the index List sorts on.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
	})
	return err
}

func (r *Repo) Create(ctx context.Context, it domain.Itinerary) error {
	rec, err := toRecord(it)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return itineraryrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Save(ctx context.Context, it domain.Itinerary) error {
	rec, err := toRecord(it)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": rec.ID}, bson.M{"$set": bson.M{
		"destination": rec.Destination,
		"startDate":   rec.StartDate,
		"endDate":     rec.EndDate,
		"dayCount":    rec.DayCount,
		"document":    rec.Document,
		"updatedAt":   rec.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return itineraryrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	var rec record
	if err := r.coll.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Itinerary{}, itineraryrepo.ErrNotFound
		}
		return domain.Itinerary{}, err
	}
	var it domain.Itinerary
	if err := json.Unmarshal([]byte(rec.Document), &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("decode itinerary %s: %w", id, err)
	}
	return it, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.ItinerarySummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"document": 0})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]domain.ItinerarySummary, 0)
	for cur.Next(ctx) {
		var rec record
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, domain.ItinerarySummary{
			ID:          domain.ItineraryID(rec.ID),
			Destination: rec.Destination,
			StartDate:   utcPtr(rec.StartDate),
			EndDate:     utcPtr(rec.EndDate),
			DayCount:    rec.DayCount,
			CreatedAt:   rec.CreatedAt.UTC(),
			UpdatedAt:   rec.UpdatedAt.UTC(),
		})
	}
	return out, cur.Err()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

package itineraryrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/triply-travel/itinerary-api/internal/adapters/contracttest"
	mongoadapter "github.com/triply-travel/itinerary-api/internal/adapters/mongo"
	itineraryrepoport "github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

func TestContract_MongoItineraryRepo(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongoadapter.Connect(ctx, uri)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	db := client.Database("itinerary_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	repo := NewRepo(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}

	contracttest.RunItineraryRepo(t, func(t *testing.T) (itineraryrepoport.Repository, func()) {
		t.Helper()
		return repo, nil
	})
}

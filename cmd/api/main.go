package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/triply-travel/itinerary-api/internal/adapters/directions/cached"
	"github.com/triply-travel/itinerary-api/internal/adapters/directions/estimate"
	"github.com/triply-travel/itinerary-api/internal/adapters/directions/mapbox"
	staticevents "github.com/triply-travel/itinerary-api/internal/adapters/events/static"
	"github.com/triply-travel/itinerary-api/internal/adapters/httpapi"
	memdirectionscache "github.com/triply-travel/itinerary-api/internal/adapters/memory/directionscache"
	memidempotency "github.com/triply-travel/itinerary-api/internal/adapters/memory/idempotency"
	memitineraryrepo "github.com/triply-travel/itinerary-api/internal/adapters/memory/itineraryrepo"
	mongoadapter "github.com/triply-travel/itinerary-api/internal/adapters/mongo"
	mongoitineraryrepo "github.com/triply-travel/itinerary-api/internal/adapters/mongo/itineraryrepo"
	"github.com/triply-travel/itinerary-api/internal/adapters/places/catalog"
	"github.com/triply-travel/itinerary-api/internal/adapters/places/googleplaces"
	postgres "github.com/triply-travel/itinerary-api/internal/adapters/postgres"
	pgidempotency "github.com/triply-travel/itinerary-api/internal/adapters/postgres/idempotency"
	pgitineraryrepo "github.com/triply-travel/itinerary-api/internal/adapters/postgres/itineraryrepo"
	redisdirectionscache "github.com/triply-travel/itinerary-api/internal/adapters/redis/directionscache"
	staticweather "github.com/triply-travel/itinerary-api/internal/adapters/weather/static"
	"github.com/triply-travel/itinerary-api/internal/adapters/weather/weatherapi"
	"github.com/triply-travel/itinerary-api/internal/app/itineraries"
	"github.com/triply-travel/itinerary-api/internal/planner"
	platformclock "github.com/triply-travel/itinerary-api/internal/platform/clock"
	"github.com/triply-travel/itinerary-api/internal/platform/config"
	"github.com/triply-travel/itinerary-api/internal/platform/outbound"
	directionsport "github.com/triply-travel/itinerary-api/internal/ports/out/directions"
	eventsport "github.com/triply-travel/itinerary-api/internal/ports/out/events"
	idempotencyport "github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
	itineraryrepoport "github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
	placesport "github.com/triply-travel/itinerary-api/internal/ports/out/places"
	weatherport "github.com/triply-travel/itinerary-api/internal/ports/out/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	clk := platformclock.NewSystemClock()
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	var cleanups []func()
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}()

	var (
		repo      itineraryrepoport.Repository
		idemStore idempotencyport.Store
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(startCtx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Fatalf("invalid postgres config: %v", err)
		}
		cleanups = append(cleanups, pool.Close)
		if err := postgres.EnsureSchema(startCtx, pool); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		repo = pgitineraryrepo.NewRepo(pool)
		idemStore = pgidempotency.NewStore(pool, pgidempotency.DefaultTTL)
	case "mongo":
		client, err := mongoadapter.Connect(startCtx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("invalid mongo config: %v", err)
		}
		cleanups = append(cleanups, func() { _ = client.Disconnect(context.Background()) })
		r := mongoitineraryrepo.NewRepo(client.Database(cfg.MongoDatabase))
		if err := r.EnsureIndexes(startCtx); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		repo = r
		idemStore = memidempotency.NewStore(clk, memidempotency.DefaultTTL)
	default:
		repo = memitineraryrepo.NewRepo()
		idemStore = memidempotency.NewStore(clk, memidempotency.DefaultTTL)
	}

	outboundClient := func(service string) *outbound.Client {
		return outbound.NewClient(outbound.Options{
			Service:       service,
			Timeout:       cfg.ProviderTimeout,
			RatePerSecond: cfg.ProviderRateLimit,
			Burst:         max(1, int(cfg.ProviderRateLimit)),
		})
	}

	var places placesport.Provider
	switch cfg.PlacesBackend {
	case "google":
		places = googleplaces.NewProvider(outboundClient("google-places"), cfg.GooglePlacesAPIKey)
	default:
		places = catalog.NewProvider()
	}

	var dirs directionsport.Provider
	switch cfg.DirectionsBackend {
	case "mapbox":
		dirs = mapbox.NewProvider(outboundClient("mapbox"), cfg.MapboxAccessToken)
	default:
		dirs = estimate.NewProvider()
	}
	switch cfg.DirectionsCache {
	case "redis":
		rdb, err := redisdirectionscache.NewClient(startCtx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("invalid redis config: %v", err)
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })
		dirs = cached.NewProvider(dirs, redisdirectionscache.NewCache(rdb), cfg.DirectionsCacheTTL)
	case "memory":
		dirs = cached.NewProvider(dirs, memdirectionscache.NewCache(clk), cfg.DirectionsCacheTTL)
	}

	var weather weatherport.Provider
	switch cfg.WeatherBackend {
	case "weatherapi":
		weather = weatherapi.NewProvider(outboundClient("weatherapi"), cfg.WeatherAPIKey)
	case "static":
		weather = staticweather.NewProvider()
	}

	var events eventsport.Provider
	if cfg.EventsBackend == "static" {
		events = staticevents.NewProvider()
	}

	swapPolicy, err := planner.ParseSwapPolicy(cfg.SwapPolicy)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	commutePolicy, err := planner.ParseCommuteFailurePolicy(cfg.CommuteFailurePolicy)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	p := planner.New(planner.Providers{
		Places:     places,
		Directions: dirs,
		Weather:    weather,
		Events:     events,
	}, clk, planner.Options{
		Concurrency:    cfg.PlannerConcurrency,
		SwapPolicy:     swapPolicy,
		CommuteFailure: commutePolicy,
	})

	svc := itineraries.NewService(p, repo, planner.ValidateActivity)
	handler := httpapi.NewRouter(httpapi.NewServer(svc, idemStore, clk))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on :%s (storage=%s places=%s directions=%s cache=%s weather=%s events=%s)",
			cfg.Port, cfg.StorageBackend, cfg.PlacesBackend, cfg.DirectionsBackend, cfg.DirectionsCache, cfg.WeatherBackend, cfg.EventsBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageBackend != "memory" || cfg.PlacesBackend != "catalog" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.DirectionsBackend != "estimate" || cfg.DirectionsCache != "memory" || cfg.DirectionsCacheTTL != 24*time.Hour {
		t.Fatalf("directions cfg=%+v", cfg)
	}
	if cfg.ProviderTimeout != 10*time.Second || cfg.PlannerConcurrency != 4 || cfg.SwapPolicy != "keep-slot" {
		t.Fatalf("planner cfg=%+v", cfg)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(map[string]string{
		"STORAGE_BACKEND":     "Postgres",
		"DATABASE_URL":        "postgres://localhost/itineraries",
		"DIRECTIONS_BACKEND":  "mapbox",
		"MAPBOX_ACCESS_TOKEN": "pk.test",
		"DIRECTIONS_CACHE":    "redis",
		"REDIS_ADDR":          "redis:6379",
		"PROVIDER_TIMEOUT":    "3s",
		"PLANNER_CONCURRENCY": "8",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.StorageBackend != "postgres" || cfg.DirectionsCache != "redis" || cfg.ProviderTimeout != 3*time.Second || cfg.PlannerConcurrency != 8 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadFrom_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	_, err := LoadFrom(map[string]string{
		"STORAGE_BACKEND": "mongo",
		"PLACES_BACKEND":  "google",
		"WEATHER_BACKEND": "sunny",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"MONGO_URI", "GOOGLE_PLACES_API_KEY", "WEATHER_BACKEND"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("err=%v, want mention of %s", err, want)
		}
	}
}

func TestLoadFrom_RejectsBadDuration(t *testing.T) {
	t.Parallel()

	if _, err := LoadFrom(map[string]string{"PROVIDER_TIMEOUT": "soon"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

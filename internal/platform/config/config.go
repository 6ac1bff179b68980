package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MongoURI       string `env:"MONGO_URI"`
	MongoDatabase  string `env:"MONGO_DATABASE" envDefault:"itineraries"`

	PlacesBackend      string `env:"PLACES_BACKEND" envDefault:"catalog"`
	GooglePlacesAPIKey string `env:"GOOGLE_PLACES_API_KEY"`

	DirectionsBackend  string        `env:"DIRECTIONS_BACKEND" envDefault:"estimate"`
	MapboxAccessToken  string        `env:"MAPBOX_ACCESS_TOKEN"`
	DirectionsCache    string        `env:"DIRECTIONS_CACHE" envDefault:"memory"`
	RedisAddr          string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	DirectionsCacheTTL time.Duration `env:"DIRECTIONS_CACHE_TTL" envDefault:"24h"`

	WeatherBackend string `env:"WEATHER_BACKEND" envDefault:"static"`
	WeatherAPIKey  string `env:"WEATHER_API_KEY"`
	EventsBackend  string `env:"EVENTS_BACKEND" envDefault:"static"`

	// ProviderTimeout bounds each outbound provider call.
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
	// ProviderRateLimit is requests per second per outbound provider; 0 disables limiting.
	ProviderRateLimit float64 `env:"PROVIDER_RATE_LIMIT" envDefault:"10"`

	PlannerConcurrency   int    `env:"PLANNER_CONCURRENCY" envDefault:"4"`
	SwapPolicy           string `env:"SWAP_POLICY" envDefault:"keep-slot"`
	CommuteFailurePolicy string `env:"COMMUTE_FAILURE_POLICY" envDefault:"zero"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFrom parses configuration from the given variables only.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	for _, p := range []*string{
		&c.StorageBackend, &c.PlacesBackend, &c.DirectionsBackend,
		&c.DirectionsCache, &c.WeatherBackend, &c.EventsBackend,
	} {
		*p = strings.ToLower(strings.TrimSpace(*p))
	}
}

// Validate reports every invalid or missing setting at once.
func (c Config) Validate() error {
	var errs []error
	oneOf := func(name, v string, allowed ...string) {
		for _, a := range allowed {
			if v == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s must be one of %s (got %q)", name, strings.Join(allowed, "|"), v))
	}
	require := func(name, v, when string) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%s is required when %s", name, when))
		}
	}

	oneOf("STORAGE_BACKEND", c.StorageBackend, "memory", "postgres", "mongo")
	oneOf("PLACES_BACKEND", c.PlacesBackend, "catalog", "google")
	oneOf("DIRECTIONS_BACKEND", c.DirectionsBackend, "estimate", "mapbox")
	oneOf("DIRECTIONS_CACHE", c.DirectionsCache, "memory", "redis", "none")
	oneOf("WEATHER_BACKEND", c.WeatherBackend, "static", "weatherapi", "none")
	oneOf("EVENTS_BACKEND", c.EventsBackend, "static", "none")

	switch c.StorageBackend {
	case "postgres":
		require("DATABASE_URL", c.DatabaseURL, "STORAGE_BACKEND=postgres")
	case "mongo":
		require("MONGO_URI", c.MongoURI, "STORAGE_BACKEND=mongo")
	}
	if c.PlacesBackend == "google" {
		require("GOOGLE_PLACES_API_KEY", c.GooglePlacesAPIKey, "PLACES_BACKEND=google")
	}
	if c.DirectionsBackend == "mapbox" {
		require("MAPBOX_ACCESS_TOKEN", c.MapboxAccessToken, "DIRECTIONS_BACKEND=mapbox")
	}
	if c.DirectionsCache == "redis" {
		require("REDIS_ADDR", c.RedisAddr, "DIRECTIONS_CACHE=redis")
	}
	if c.WeatherBackend == "weatherapi" {
		require("WEATHER_API_KEY", c.WeatherAPIKey, "WEATHER_BACKEND=weatherapi")
	}

	if c.ProviderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("PROVIDER_TIMEOUT must be positive (got %s)", c.ProviderTimeout))
	}
	if c.ProviderRateLimit < 0 {
		errs = append(errs, fmt.Errorf("PROVIDER_RATE_LIMIT must not be negative (got %g)", c.ProviderRateLimit))
	}
	if c.PlannerConcurrency < 1 {
		errs = append(errs, fmt.Errorf("PLANNER_CONCURRENCY must be at least 1 (got %d)", c.PlannerConcurrency))
	}

	return errors.Join(errs...)
}

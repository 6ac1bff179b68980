package itest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/triply-travel/itinerary-api/internal/adapters/directions/cached"
	"github.com/triply-travel/itinerary-api/internal/adapters/directions/estimate"
	staticevents "github.com/triply-travel/itinerary-api/internal/adapters/events/static"
	"github.com/triply-travel/itinerary-api/internal/adapters/httpapi"
	memdirectionscache "github.com/triply-travel/itinerary-api/internal/adapters/memory/directionscache"
	memidempotency "github.com/triply-travel/itinerary-api/internal/adapters/memory/idempotency"
	memitineraryrepo "github.com/triply-travel/itinerary-api/internal/adapters/memory/itineraryrepo"
	"github.com/triply-travel/itinerary-api/internal/adapters/places/catalog"
	pgidempotency "github.com/triply-travel/itinerary-api/internal/adapters/postgres/idempotency"
	pgitineraryrepo "github.com/triply-travel/itinerary-api/internal/adapters/postgres/itineraryrepo"
	postgres_testutil "github.com/triply-travel/itinerary-api/internal/adapters/postgres/testutil"
	staticweather "github.com/triply-travel/itinerary-api/internal/adapters/weather/static"
	"github.com/triply-travel/itinerary-api/internal/app/itineraries"
	"github.com/triply-travel/itinerary-api/internal/planner"
	"github.com/triply-travel/itinerary-api/internal/platform/clock"
	idempotencyport "github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
	itineraryrepoport "github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

type backend string

const (
	backendMemory   backend = "memory"
	backendPostgres backend = "postgres"
)

func backendsFromEnv(t *testing.T) []backend {
	t.Helper()
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ITEST_BACKEND"))) {
	case "", "memory":
		return []backend{backendMemory}
	case "postgres":
		return []backend{backendPostgres}
	case "all":
		return []backend{backendMemory, backendPostgres}
	default:
		t.Fatalf("unknown ITEST_BACKEND value (expected memory|postgres|all)")
		return nil
	}
}

type testServer struct {
	baseURL string
	client  *http.Client
}

func newTestServer(t *testing.T, b backend) *testServer {
	t.Helper()

	clk := clock.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	var (
		repo      itineraryrepoport.Repository
		idemStore idempotencyport.Store
	)

	switch b {
	case backendPostgres:
		pool := postgres_testutil.OpenMigratedPool(t)
		repo = pgitineraryrepo.NewRepo(pool)
		idemStore = pgidempotency.NewStore(pool, pgidempotency.DefaultTTL)
	case backendMemory:
		repo = memitineraryrepo.NewRepo()
		idemStore = memidempotency.NewStore(clk, memidempotency.DefaultTTL)
	default:
		t.Fatalf("unknown backend: %s", b)
	}

	dirs := cached.NewProvider(estimate.NewProvider(), memdirectionscache.NewCache(clk), time.Hour)
	p := planner.New(planner.Providers{
		Places:     catalog.NewProvider(),
		Directions: dirs,
		Weather:    staticweather.NewProvider(),
		Events:     staticevents.NewProvider(),
	}, clk, planner.Options{SwapPolicy: planner.SwapReflowDay})

	svc := itineraries.NewService(p, repo, planner.ValidateActivity)
	handler := httpapi.NewRouter(httpapi.NewServer(svc, idemStore, clk))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

func (s *testServer) doJSON(t *testing.T, method string, path string, body any) (int, []byte, http.Header) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.url(path), r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out, resp.Header
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mustUnmarshal[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, string(b))
	}
	return out
}

func requireErrorCode(t *testing.T, status int, body []byte, wantStatus int, wantCode string) {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("status=%d want=%d body=%s", status, wantStatus, string(body))
	}
	got := mustUnmarshal[errorResponse](t, body)
	if got.Error.Code != wantCode {
		t.Fatalf("error.code=%q want=%q body=%s", got.Error.Code, wantCode, string(body))
	}
}

func requireHeaderPresent(t *testing.T, h http.Header, key string) {
	t.Helper()
	if strings.TrimSpace(h.Get(key)) == "" {
		t.Fatalf("expected header %q to be present", key)
	}
}

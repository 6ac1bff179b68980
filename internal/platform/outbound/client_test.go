package outbound

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestClient_GetJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "paris" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Paris"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Options{Service: "test", RatePerSecond: 100})
	var out struct {
		Name string `json:"name"`
	}
	if err := c.GetJSON(context.Background(), srv.URL, url.Values{"q": {"paris"}}, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Name != "Paris" {
		t.Fatalf("name=%q", out.Name)
	}

	err := c.GetJSON(context.Background(), srv.URL, url.Values{"q": {"rome"}}, &out)
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusBadRequest || se.Service != "test" {
		t.Fatalf("err=%v, want 400 StatusError", err)
	}
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Options{Service: "slow", RatePerSecond: 0.001, Burst: 1})
	var out map[string]any
	if err := c.GetJSON(context.Background(), srv.URL, nil, &out); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.GetJSON(ctx, srv.URL, nil, &out); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err=%v, want ErrRateLimited", err)
	}
}

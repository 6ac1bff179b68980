// Package outbound is the shared HTTP JSON client used by the third-party
// provider adapters (places, directions, weather).
package outbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const DefaultTimeout = 15 * time.Second

// maxErrorBody bounds how much of an error response is kept for the message.
const maxErrorBody = 512

var ErrRateLimited = errors.New("outbound rate limit wait aborted")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, e.Body)
}

type Options struct {
	// Service names the provider in errors and logs.
	Service string
	Timeout time.Duration
	// RatePerSecond throttles outgoing requests; 0 disables throttling.
	RatePerSecond float64
	Burst         int
	HTTPClient    *http.Client
}

// Client performs rate-limited GET requests that decode JSON bodies.
// It is safe for concurrent use.
type Client struct {
	service string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}
	return &Client{service: opts.Service, http: hc, limiter: limiter}
}

// GetJSON issues GET base?query and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, base string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w: %v", c.service, ErrRateLimited, err)
		}
	}

	u := base
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", c.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Service: c.service, StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.service, err)
	}
	return nil
}

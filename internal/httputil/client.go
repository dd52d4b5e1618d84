// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client shared by the Wikimedia API
// clients: a polite request rate, User-Agent and token headers, and
// exponential backoff on HTTP 429.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/suggested-edits/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const (
	defaultMaxRetries        = 5
	defaultRequestsPerSecond = 5
	defaultTimeout           = 30 * time.Second
	defaultUserAgent         = "suggested-edits/0.1"
)

// StatusError reports a non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// Client issues rate-limited GET requests. A Client is safe for concurrent
// use; the limiter is the only state it carries between requests.
type Client struct {
	HTTP        *http.Client
	Limiter     *rate.Limiter
	UserAgent   string
	AccessToken string
	MaxRetries  int
}

// NewClient builds a Client from cfg, filling unset fields with defaults.
func NewClient(cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		HTTP:        &http.Client{Timeout: timeout},
		Limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		UserAgent:   ua,
		AccessToken: cfg.AccessToken,
		MaxRetries:  cfg.MaxRetries,
	}
}

// Get fetches url and returns the response. On HTTP 429 it drains the body
// and retries with exponential backoff starting at RetryBaseDelay; after
// MaxRetries (default 5) the last 429 response is returned as-is. A context
// cancelled while waiting for the limiter or a backoff returns ctx.Err().
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	maxRetries := c.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	delay := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, err
			}
		}

		resp, err := hc.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// GetJSON fetches url and decodes a 200 response body into v. Other status
// codes are reported as *StatusError.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

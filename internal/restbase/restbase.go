// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package restbase fetches page summaries from the Wikimedia REST API.
package restbase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/suggested-edits/internal/httputil"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

// ErrPageNotFound is returned when the summary endpoint answers 404.
var ErrPageNotFound = errors.New("page not found")

// restURL returns the REST API base for site. Declared as a var so tests can
// substitute an httptest server.
var restURL = func(site types.WikiSite) string {
	return site.URL() + "/api/rest_v1"
}

// Client fetches page summaries.
type Client struct {
	HTTP *httputil.Client
}

// NewClient returns a Client using hc for transport.
func NewClient(hc *httputil.Client) *Client {
	return &Client{HTTP: hc}
}

// Summary returns the display summary of title on its own site.
func (c *Client) Summary(ctx context.Context, title types.PageTitle) (*types.PageSummary, error) {
	if title.Text == "" {
		return nil, fmt.Errorf("summary: empty title")
	}
	reqURL := restURL(title.Site) + "/page/summary/" + url.PathEscape(title.PrefixedText())

	var summary types.PageSummary
	if err := c.HTTP.GetJSON(ctx, reqURL, &summary); err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("summary of %s: %w", title, ErrPageNotFound)
		}
		return nil, fmt.Errorf("summary of %s: %w", title, err)
	}
	return &summary, nil
}

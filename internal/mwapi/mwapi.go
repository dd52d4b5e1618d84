// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mwapi queries the MediaWiki Action API: random page batches with
// their structural properties, random media batches, and structured-data
// entities (wbgetentities) from Wikidata or Commons.
package mwapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/suggested-edits/internal/httputil"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

// DefaultBatchSize is the number of random pages requested per call.
const DefaultBatchSize = 10

// apiURL returns the Action API endpoint for site. Declared as a var so
// tests can substitute an httptest server.
var apiURL = func(site types.WikiSite) string {
	return site.URL() + "/w/api.php"
}

// APIError is an error body returned by the Action API with HTTP 200.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("MediaWiki API error %s: %s", e.Code, e.Info)
}

// Client queries the Action API of any WikiSite.
type Client struct {
	HTTP *httputil.Client

	// BatchSize is the number of random pages per call (default 10).
	BatchSize int
}

// NewClient returns a Client using hc for transport.
func NewClient(hc *httputil.Client, batchSize int) *Client {
	return &Client{HTTP: hc, BatchSize: batchSize}
}

func (c *Client) batchSize() string {
	n := c.BatchSize
	if n <= 0 {
		n = DefaultBatchSize
	}
	return strconv.Itoa(n)
}

// RandomPages samples random main-namespace articles from site with their
// page properties and short descriptions attached.
func (c *Client) RandomPages(ctx context.Context, site types.WikiSite) ([]types.Page, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"redirects":     {"1"},
		"generator":     {"random"},
		"grnnamespace":  {"0"},
		"grnlimit":      {c.batchSize()},
		"prop":          {"pageprops|description"},
	}
	return c.queryPages(ctx, site, params)
}

// RandomImages samples random files from site (normally Commons) with their
// image info attached.
func (c *Client) RandomImages(ctx context.Context, site types.WikiSite) ([]types.Page, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"generator":     {"random"},
		"grnnamespace":  {"6"},
		"grnlimit":      {c.batchSize()},
		"prop":          {"imageinfo"},
		"iiprop":        {"url|mime|size"},
	}
	return c.queryPages(ctx, site, params)
}

func (c *Client) queryPages(ctx context.Context, site types.WikiSite, params url.Values) ([]types.Page, error) {
	reqURL := apiURL(site) + "?" + params.Encode()

	var qr queryResponse
	if err := c.HTTP.GetJSON(ctx, reqURL, &qr); err != nil {
		return nil, fmt.Errorf("%s random query: %w", site, err)
	}
	if qr.Error != nil {
		return nil, fmt.Errorf("%s random query: %w", site, qr.Error)
	}
	if qr.Query == nil {
		return nil, fmt.Errorf("%s random query: response has no query section", site)
	}

	pages := make([]types.Page, 0, len(qr.Query.Pages))
	for _, wp := range qr.Query.Pages {
		pages = append(pages, wp.toPage())
	}
	return pages, nil
}

// Entities fetches the structured-data records for ids from site (Wikidata
// or Commons). The result keeps the order in which the API lists entities.
// An empty id list returns no entities without a request.
func (c *Client) Entities(ctx context.Context, site types.WikiSite, ids []string) ([]types.Entity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"action":        {"wbgetentities"},
		"format":        {"json"},
		"formatversion": {"2"},
		"ids":           {strings.Join(ids, "|")},
		"props":         {"labels|descriptions|sitelinks"},
	}
	reqURL := apiURL(site) + "?" + params.Encode()

	var er entitiesResponse
	if err := c.HTTP.GetJSON(ctx, reqURL, &er); err != nil {
		return nil, fmt.Errorf("%s wbgetentities: %w", site, err)
	}
	if er.Error != nil {
		return nil, fmt.Errorf("%s wbgetentities: %w", site, er.Error)
	}

	entities, err := decodeEntities(er.Entities)
	if err != nil {
		return nil, fmt.Errorf("%s wbgetentities: %w", site, err)
	}
	return entities, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package restbase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/pdiddy/suggested-edits/internal/httputil"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

const sampleSummaryJSON = `{
  "type": "standard",
  "title": "Douglas Adams",
  "displaytitle": "<span>Douglas Adams</span>",
  "pageid": 8091,
  "lang": "en",
  "wikibase_item": "Q42",
  "extract": "Douglas Noel Adams was an English author.",
  "thumbnail": {"source": "https://upload.example/da.jpg", "width": 320, "height": 400}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	orig := restURL
	restURL = func(types.WikiSite) string { return ts.URL + "/api/rest_v1" }
	t.Cleanup(func() { restURL = orig })

	return NewClient(&httputil.Client{
		HTTP:    ts.Client(),
		Limiter: rate.NewLimiter(rate.Inf, 1),
	})
}

func TestSummary(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(sampleSummaryJSON))
	})

	title := types.PageTitle{Text: "Douglas Adams", Site: types.ForLanguageCode("en")}
	s, err := c.Summary(context.Background(), title)
	require.NoError(t, err)

	assert.Equal(t, "/api/rest_v1/page/summary/Douglas_Adams", gotPath)
	assert.Equal(t, "Douglas Adams", s.Title)
	assert.Equal(t, int64(8091), s.PageID)
	assert.Equal(t, "Q42", s.WikibaseItem)
	require.NotNil(t, s.Thumbnail)
	assert.Equal(t, 320, s.Thumbnail.Width)
}

func TestSummary_EscapesTitle(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"title": "AC/DC"}`))
	})

	_, err := c.Summary(context.Background(), types.PageTitle{Text: "AC/DC", Site: types.ForLanguageCode("en")})
	require.NoError(t, err)
	assert.Equal(t, "/api/rest_v1/page/summary/AC%2FDC", gotPath)
}

func TestSummary_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Summary(context.Background(), types.PageTitle{Text: "Nope", Site: types.ForLanguageCode("en")})
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestSummary_EmptyTitle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.Summary(context.Background(), types.PageTitle{Site: types.ForLanguageCode("en")})
	assert.Error(t, err)
}

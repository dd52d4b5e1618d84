// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mwapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/suggested-edits/pkg/types"
)

// Action API JSON structures.
type queryResponse struct {
	Error *APIError   `json:"error"`
	Query *queryBlock `json:"query"`
}

type queryBlock struct {
	Pages []wirePage `json:"pages"`
}

type wirePage struct {
	PageID      int64           `json:"pageid"`
	NS          int             `json:"ns"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PageProps   *wirePageProps  `json:"pageprops"`
	ImageInfo   []wireImageInfo `json:"imageinfo"`
}

// wirePageProps marks flags by key presence: "disambiguation": "".
type wirePageProps struct {
	WikibaseItem   string  `json:"wikibase_item"`
	Disambiguation *string `json:"disambiguation"`
}

type wireImageInfo struct {
	URL            string `json:"url"`
	DescriptionURL string `json:"descriptionurl"`
	Mime           string `json:"mime"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

func (wp wirePage) toPage() types.Page {
	p := types.Page{
		PageID:      wp.PageID,
		Namespace:   wp.NS,
		Title:       wp.Title,
		Description: wp.Description,
	}
	if wp.PageProps != nil {
		p.Props = &types.PageProps{
			WikibaseItem:   wp.PageProps.WikibaseItem,
			Disambiguation: wp.PageProps.Disambiguation != nil,
		}
	}
	for _, ii := range wp.ImageInfo {
		p.ImageInfo = append(p.ImageInfo, types.ImageInfo{
			URL:            ii.URL,
			DescriptionURL: ii.DescriptionURL,
			Mime:           ii.Mime,
			Width:          ii.Width,
			Height:         ii.Height,
		})
	}
	return p
}

type entitiesResponse struct {
	Error    *APIError       `json:"error"`
	Entities json.RawMessage `json:"entities"`
}

type wireEntity struct {
	Missing      json.RawMessage `json:"missing"`
	Labels       termMap         `json:"labels"`
	Descriptions termMap         `json:"descriptions"`
	SiteLinks    siteLinkMap     `json:"sitelinks"`
}

type wireTerm struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// termMap decodes a language-keyed term object. The API encodes an empty
// object as [] for some entity types.
type termMap map[string]wireTerm

func (m *termMap) UnmarshalJSON(data []byte) error {
	if isEmptyArray(data) {
		*m = termMap{}
		return nil
	}
	var raw map[string]wireTerm
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = raw
	return nil
}

type siteLinkMap map[string]types.SiteLink

func (m *siteLinkMap) UnmarshalJSON(data []byte) error {
	if isEmptyArray(data) {
		*m = siteLinkMap{}
		return nil
	}
	var raw map[string]types.SiteLink
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = raw
	return nil
}

func isEmptyArray(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("[]"))
}

// toEntity keys the entity by the requested id. For a redirected item the
// body's "id" names the redirect target, which no candidate asked for.
func (we wireEntity) toEntity(key string) types.Entity {
	e := types.Entity{ID: key, Missing: we.Missing != nil}
	if we.Labels != nil {
		e.Labels = make(map[string]string, len(we.Labels))
		for lang, t := range we.Labels {
			e.Labels[lang] = t.Value
		}
	}
	if we.Descriptions != nil {
		e.Descriptions = make(map[string]string, len(we.Descriptions))
		for lang, t := range we.Descriptions {
			e.Descriptions[lang] = t.Value
		}
	}
	if we.SiteLinks != nil {
		e.SiteLinks = map[string]types.SiteLink(we.SiteLinks)
	}
	return e
}

// decodeEntities walks the "entities" object token by token so the result
// keeps the order the API returned.
func decodeEntities(raw json.RawMessage) ([]types.Entity, error) {
	if len(raw) == 0 || string(raw) == "null" || isEmptyArray(raw) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading entities: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("entities: expected object, got %v", tok)
	}

	var entities []types.Entity
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading entity key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("entities: expected key, got %v", keyTok)
		}
		var we wireEntity
		if err := dec.Decode(&we); err != nil {
			return nil, fmt.Errorf("decoding entity %s: %w", key, err)
		}
		entities = append(entities, we.toEntity(key))
	}
	return entities, nil
}

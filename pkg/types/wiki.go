// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for suggested-edits discovery.
// It covers the corpus identifiers (WikiSite, PageTitle), sampled candidates
// (Page), structured-data records (Entity), the display summary returned by
// the REST API (PageSummary), and the results of each discovery mode.
package types

import (
	"strconv"
	"strings"
)

const (
	// WikidataDomain hosts the structured-data items linked from article pages.
	WikidataDomain = "www.wikidata.org"

	// CommonsDomain hosts media files and their structured-data captions.
	CommonsDomain = "commons.wikimedia.org"
)

// WikiSite identifies one corpus edition: a domain plus its language code.
type WikiSite struct {
	// Domain is the host name (e.g. "en.wikipedia.org").
	Domain string `json:"domain" yaml:"domain"`

	// LanguageCode is the content language (e.g. "en"). Empty for
	// multilingual sites such as Wikidata and Commons.
	LanguageCode string `json:"language_code,omitempty" yaml:"language_code,omitempty"`
}

// ForLanguageCode returns the Wikipedia edition for lang.
func ForLanguageCode(lang string) WikiSite {
	return WikiSite{Domain: lang + ".wikipedia.org", LanguageCode: lang}
}

// WikidataSite returns the Wikidata site.
func WikidataSite() WikiSite {
	return WikiSite{Domain: WikidataDomain}
}

// CommonsSite returns the Wikimedia Commons site.
func CommonsSite() WikiSite {
	return WikiSite{Domain: CommonsDomain}
}

// DBName returns the site-link key used by Wikidata for this edition
// (e.g. "enwiki", "zh_min_nanwiki").
func (s WikiSite) DBName() string {
	return strings.ReplaceAll(s.LanguageCode, "-", "_") + "wiki"
}

// URL returns the site's base URL.
func (s WikiSite) URL() string {
	return "https://" + s.Domain
}

func (s WikiSite) String() string {
	return s.Domain
}

// PageTitle is a title qualified by the site it lives on.
type PageTitle struct {
	Text string   `json:"text" yaml:"text"`
	Site WikiSite `json:"site" yaml:"site"`
}

// PrefixedText returns the title in the form used by API paths: spaces are
// replaced with underscores.
func (t PageTitle) PrefixedText() string {
	return strings.ReplaceAll(t.Text, " ", "_")
}

func (t PageTitle) String() string {
	return t.Site.Domain + ":" + t.Text
}

// PageProps holds the structural properties attached to a sampled page.
type PageProps struct {
	// WikibaseItem is the cross-reference key (e.g. "Q42"); empty when the
	// page is not linked to a structured-data item.
	WikibaseItem string `json:"wikibase_item,omitempty" yaml:"wikibase_item,omitempty"`

	// Disambiguation is set when the page is a disambiguation page.
	Disambiguation bool `json:"disambiguation,omitempty" yaml:"disambiguation,omitempty"`
}

// ImageInfo describes the file behind a media page.
type ImageInfo struct {
	URL            string `json:"url" yaml:"url"`
	DescriptionURL string `json:"description_url,omitempty" yaml:"description_url,omitempty"`
	Mime           string `json:"mime,omitempty" yaml:"mime,omitempty"`
	Width          int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height         int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// Page is one sampled candidate: an article or a media file.
type Page struct {
	// PageID is the numeric page id on its site.
	PageID int64 `json:"page_id" yaml:"page_id"`

	// Namespace is the MediaWiki namespace number (0 for articles, 6 for files).
	Namespace int `json:"namespace" yaml:"namespace"`

	Title string `json:"title" yaml:"title"`

	// Description is the existing short description, empty when absent.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Props is nil when the page came back without any page properties.
	Props *PageProps `json:"props,omitempty" yaml:"props,omitempty"`

	// ImageInfo is populated for media pages only.
	ImageInfo []ImageInfo `json:"image_info,omitempty" yaml:"image_info,omitempty"`
}

// MediaInfoID returns the structured-data key of a media page ("M" + page id).
func (p Page) MediaInfoID() string {
	return MediaInfoID(p.PageID)
}

// MediaInfoID formats the structured-data key of the media page with id.
func MediaInfoID(pageID int64) string {
	return "M" + strconv.FormatInt(pageID, 10)
}

// SiteLink is a link from an entity to a page on one edition.
type SiteLink struct {
	Site  string `json:"site" yaml:"site"`
	Title string `json:"title" yaml:"title"`
}

// Entity is a structured-data record keyed by an opaque id ("Q42", "M123").
// Maps are nil when the source returned no such section.
type Entity struct {
	ID string `json:"id" yaml:"id"`

	// Missing is set when the source knows the id but holds no record for it.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Labels maps a language code to a label (captions on Commons).
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Descriptions maps a language code to a description.
	Descriptions map[string]string `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`

	// SiteLinks maps a site db name ("enwiki") to the linked page.
	SiteLinks map[string]SiteLink `json:"sitelinks,omitempty" yaml:"sitelinks,omitempty"`
}

// HasLabel reports whether the entity carries a label in lang.
func (e Entity) HasLabel(lang string) bool {
	_, ok := e.Labels[lang]
	return ok
}

// HasDescription reports whether the entity carries a description in lang.
func (e Entity) HasDescription(lang string) bool {
	_, ok := e.Descriptions[lang]
	return ok
}

// HasSiteLink reports whether the entity links to a page on site.
func (e Entity) HasSiteLink(site WikiSite) bool {
	_, ok := e.SiteLinks[site.DBName()]
	return ok
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Thumbnail is an image reference inside a page summary.
type Thumbnail struct {
	Source string `json:"source" yaml:"source"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// PageSummary is the display record returned by the REST summary endpoint.
// Discovery treats it as a pass-through value.
type PageSummary struct {
	Title        string     `json:"title" yaml:"title"`
	DisplayTitle string     `json:"displaytitle,omitempty" yaml:"display_title,omitempty"`
	PageID       int64      `json:"pageid,omitempty" yaml:"page_id,omitempty"`
	Lang         string     `json:"lang,omitempty" yaml:"lang,omitempty"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
	Extract      string     `json:"extract,omitempty" yaml:"extract,omitempty"`
	ExtractHTML  string     `json:"extract_html,omitempty" yaml:"extract_html,omitempty"`
	WikibaseItem string     `json:"wikibase_item,omitempty" yaml:"wikibase_item,omitempty"`
	Thumbnail    *Thumbnail `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Original     *Thumbnail `json:"originalimage,omitempty" yaml:"original_image,omitempty"`
}

// DescriptionTranslation pairs a description in the source language with the
// summary of the target-language article that lacks one.
type DescriptionTranslation struct {
	// SourceText is the source-language description; empty when the
	// source language was not required and the entity had none.
	SourceText string `json:"source_text" yaml:"source_text"`

	Target *PageSummary `json:"target" yaml:"target"`

	// SourceTitle is the source-language page of the same item.
	SourceTitle PageTitle `json:"source_title" yaml:"source_title"`

	// TargetTitle is the target-language page the summary was fetched for.
	TargetTitle PageTitle `json:"target_title" yaml:"target_title"`
}

// CaptionTranslation pairs a caption in the source language with the image
// page that lacks one in the target language.
type CaptionTranslation struct {
	SourceText string `json:"source_text" yaml:"source_text"`
	Image      Page   `json:"image" yaml:"image"`
}

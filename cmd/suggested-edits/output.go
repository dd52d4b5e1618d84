// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/suggested-edits/internal/journal"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

// item is the printable form of any discovery result.
type item struct {
	Mode        types.DiscoveryMode `json:"mode"`
	Wiki        string              `json:"wiki"`
	Title       string              `json:"title"`
	URL         string              `json:"url"`
	SourceTitle string              `json:"source_title,omitempty"`
	SourceText  string              `json:"source_text,omitempty"`
	Extract     string              `json:"extract,omitempty"`
	Thumbnail   string              `json:"thumbnail,omitempty"`
	JournalID   string              `json:"journal_id,omitempty"`
}

func pageURL(site types.WikiSite, title string) string {
	return site.URL() + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

func descriptionItem(site types.WikiSite, s *types.PageSummary) item {
	it := item{
		Mode:    types.ModeDescription,
		Wiki:    site.Domain,
		Title:   s.Title,
		URL:     pageURL(site, s.Title),
		Extract: s.Extract,
	}
	if s.Thumbnail != nil {
		it.Thumbnail = s.Thumbnail.Source
	}
	return it
}

func descriptionTranslationItem(t *types.DescriptionTranslation) item {
	it := descriptionItem(t.TargetTitle.Site, t.Target)
	it.Mode = types.ModeDescriptionTranslation
	it.SourceTitle = t.SourceTitle.Text
	it.SourceText = t.SourceText
	return it
}

func captionItem(site types.WikiSite, p *types.Page) item {
	it := item{
		Mode:  types.ModeCaption,
		Wiki:  site.Domain,
		Title: p.Title,
		URL:   pageURL(site, p.Title),
	}
	if len(p.ImageInfo) > 0 {
		it.Thumbnail = p.ImageInfo[0].URL
	}
	return it
}

func captionTranslationItem(site types.WikiSite, c *types.CaptionTranslation) item {
	it := captionItem(site, &c.Image)
	it.Mode = types.ModeCaptionTranslation
	it.SourceText = c.SourceText
	return it
}

func (it item) entry() journal.Entry {
	return journal.Entry{
		Mode:        it.Mode,
		Wiki:        it.Wiki,
		Title:       it.Title,
		SourceTitle: it.SourceTitle,
		SourceText:  it.SourceText,
	}
}

// formatItems writes results as human-readable blocks to w.
func formatItems(items []item, w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	for i, it := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s\n", bold(it.Title), gray("["+string(it.Mode)+"]"))
		fmt.Fprintf(w, "  %s\n", cyan(it.URL))
		if it.SourceText != "" {
			from := ""
			if it.SourceTitle != "" {
				from = gray(" (from " + it.SourceTitle + ")")
			}
			fmt.Fprintf(w, "  translate: %s%s\n", green(it.SourceText), from)
		}
		if it.Extract != "" {
			fmt.Fprintf(w, "  %s\n", truncate(it.Extract, 200))
		}
		if it.JournalID != "" {
			fmt.Fprintf(w, "  %s\n", gray("recorded as "+it.JournalID))
		}
	}
}

// formatJSON writes results as indented JSON to w.
func formatJSON(items []item, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discovery

import "github.com/pdiddy/suggested-edits/pkg/types"

// lacksDescription reports whether an article is eligible for a new
// description in its own language.
func lacksDescription(p types.Page) bool {
	return p.Props != nil && !p.Props.Disambiguation && p.Description == ""
}

// hasCrossReference reports whether an article can be looked up in the
// structured-data source.
func hasCrossReference(p types.Page) bool {
	return p.Props != nil && !p.Props.Disambiguation && p.Props.WikibaseItem != ""
}

// firstPage returns the first page in batch order that satisfies keep.
func firstPage(pages []types.Page, keep func(types.Page) bool) (types.Page, bool) {
	for _, p := range pages {
		if keep(p) {
			return p, true
		}
	}
	return types.Page{}, false
}

// crossReferenceKeys returns the structured-data keys of every page that
// passes hasCrossReference, in batch order.
func crossReferenceKeys(pages []types.Page) []string {
	var keys []string
	for _, p := range pages {
		if hasCrossReference(p) {
			keys = append(keys, p.Props.WikibaseItem)
		}
	}
	return keys
}

// mediaInfoKeys returns the structured-data key of every image in the batch.
func mediaInfoKeys(pages []types.Page) []string {
	keys := make([]string, 0, len(pages))
	for _, p := range pages {
		keys = append(keys, p.MediaInfoID())
	}
	return keys
}

// joinFirst walks entities in the order returned and, for the first entity
// satisfying keep, returns the first candidate whose key equals the entity
// id. Entities without a matching candidate are skipped.
func joinFirst[C any](entities []types.Entity, candidates []C, key func(C) string, keep func(types.Entity) bool) (types.Entity, C, bool) {
	var zero C
	for _, ent := range entities {
		if !keep(ent) {
			continue
		}
		for _, c := range candidates {
			if key(c) == ent.ID {
				return ent, c, true
			}
		}
	}
	return types.Entity{}, zero, false
}

// needsDescriptionTranslation reports whether ent lacks a target-language
// description while both editions have a page for it.
func needsDescriptionTranslation(source, target types.WikiSite, sourceLangMustExist bool) func(types.Entity) bool {
	return func(ent types.Entity) bool {
		if ent.HasDescription(target.LanguageCode) {
			return false
		}
		if sourceLangMustExist && !ent.HasDescription(source.LanguageCode) {
			return false
		}
		return ent.HasSiteLink(source) && ent.HasSiteLink(target)
	}
}

// lacksCaption reports whether ent has no caption in lang. A nil label map
// counts as no caption.
func lacksCaption(lang string) func(types.Entity) bool {
	return func(ent types.Entity) bool {
		return !ent.HasLabel(lang)
	}
}

// needsCaptionTranslation reports whether ent has a source caption but no
// target caption.
func needsCaptionTranslation(sourceLang, targetLang string) func(types.Entity) bool {
	return func(ent types.Entity) bool {
		return ent.HasLabel(sourceLang) && !ent.HasLabel(targetLang)
	}
}

func identity(s string) string { return s }

func pageMediaInfoID(p types.Page) string { return p.MediaInfoID() }

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discovery

import (
	"context"

	"github.com/pdiddy/suggested-edits/pkg/types"
)

// NextArticleWithMissingDescription returns the summary of a random article
// on site that has no short description. Disambiguation pages and pages
// without page properties are never chosen.
func (e *Engine) NextArticleWithMissingDescription(ctx context.Context, site types.WikiSite) (*types.PageSummary, error) {
	if err := checkLanguages(site.LanguageCode); err != nil {
		return nil, err
	}

	page, err := retryUntilFound(ctx, e, types.ModeDescription, func(ctx context.Context) (types.Page, bool, error) {
		pages, err := e.pages.RandomPages(ctx, site)
		if err != nil {
			return types.Page{}, false, &StageError{Stage: StageSampling, Err: err}
		}
		page, ok := firstPage(pages, lacksDescription)
		return page, ok, nil
	})
	if err != nil {
		return nil, err
	}

	return e.summary(ctx, types.PageTitle{Text: page.Title, Site: site})
}

// NextArticleForTranslation returns an article on the targetLang edition that
// has no description in targetLang, paired with the description of the same
// item in the source language. When sourceLangMustExist is false the source
// text may be empty.
func (e *Engine) NextArticleForTranslation(ctx context.Context, source types.WikiSite, targetLang string, sourceLangMustExist bool) (*types.DescriptionTranslation, error) {
	if err := checkLanguages(source.LanguageCode, targetLang); err != nil {
		return nil, err
	}
	target := types.ForLanguageCode(targetLang)
	keep := needsDescriptionTranslation(source, target, sourceLangMustExist)

	match, err := retryUntilFound(ctx, e, types.ModeDescriptionTranslation, func(ctx context.Context) (types.DescriptionTranslation, bool, error) {
		pages, err := e.pages.RandomPages(ctx, source)
		if err != nil {
			return types.DescriptionTranslation{}, false, &StageError{Stage: StageSampling, Err: err}
		}

		keys := crossReferenceKeys(pages)
		if len(keys) == 0 {
			return types.DescriptionTranslation{}, false, nil
		}

		entities, err := e.entities.Entities(ctx, e.wikidata, keys)
		if err != nil {
			return types.DescriptionTranslation{}, false, &StageError{Stage: StageCrossReference, Err: err}
		}

		ent, _, ok := joinFirst(entities, keys, identity, keep)
		if !ok {
			return types.DescriptionTranslation{}, false, nil
		}
		return types.DescriptionTranslation{
			SourceText: ent.Descriptions[source.LanguageCode],
			SourceTitle: types.PageTitle{
				Text: ent.SiteLinks[source.DBName()].Title,
				Site: source,
			},
			TargetTitle: types.PageTitle{
				Text: ent.SiteLinks[target.DBName()].Title,
				Site: target,
			},
		}, true, nil
	})
	if err != nil {
		return nil, err
	}

	summary, err := e.summary(ctx, match.TargetTitle)
	if err != nil {
		return nil, err
	}
	match.Target = summary
	return &match, nil
}

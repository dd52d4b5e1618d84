// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discovery

import (
	"context"

	"github.com/pdiddy/suggested-edits/pkg/types"
)

// NextImageWithMissingCaption returns a random media file that has no
// caption in lang.
func (e *Engine) NextImageWithMissingCaption(ctx context.Context, lang string) (*types.Page, error) {
	if err := checkLanguages(lang); err != nil {
		return nil, err
	}

	page, err := retryUntilFound(ctx, e, types.ModeCaption, func(ctx context.Context) (types.Page, bool, error) {
		images, entities, err := e.sampleImages(ctx)
		if err != nil || len(images) == 0 {
			return types.Page{}, false, err
		}
		_, page, ok := joinFirst(entities, images, pageMediaInfoID, lacksCaption(lang))
		return page, ok, nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// NextImageForCaptionTranslation returns a media file captioned in
// sourceLang but not in targetLang, paired with its sourceLang caption.
func (e *Engine) NextImageForCaptionTranslation(ctx context.Context, sourceLang, targetLang string) (*types.CaptionTranslation, error) {
	if err := checkLanguages(sourceLang, targetLang); err != nil {
		return nil, err
	}
	keep := needsCaptionTranslation(sourceLang, targetLang)

	match, err := retryUntilFound(ctx, e, types.ModeCaptionTranslation, func(ctx context.Context) (types.CaptionTranslation, bool, error) {
		images, entities, err := e.sampleImages(ctx)
		if err != nil || len(images) == 0 {
			return types.CaptionTranslation{}, false, err
		}
		ent, page, ok := joinFirst(entities, images, pageMediaInfoID, keep)
		if !ok {
			return types.CaptionTranslation{}, false, nil
		}
		return types.CaptionTranslation{SourceText: ent.Labels[sourceLang], Image: page}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// sampleImages draws a random media batch and fetches the entity of every
// image in it. An empty batch returns no error and no entities.
func (e *Engine) sampleImages(ctx context.Context) ([]types.Page, []types.Entity, error) {
	images, err := e.pages.RandomImages(ctx, e.commons)
	if err != nil {
		return nil, nil, &StageError{Stage: StageSampling, Err: err}
	}
	if len(images) == 0 {
		return nil, nil, nil
	}

	entities, err := e.entities.Entities(ctx, e.commons, mediaInfoKeys(images))
	if err != nil {
		return nil, nil, &StageError{Stage: StageCrossReference, Err: err}
	}
	return images, entities, nil
}

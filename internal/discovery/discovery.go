// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discovery finds one work item for a suggested-edits feed: an
// article without a short description or an image without a caption,
// optionally paired with text to translate from another language.
//
// Every discovery runs attempts of the form sample → filter (→ cross-reference)
// until one attempt yields a qualifying candidate. An attempt that finds
// nothing starts over from sampling; any other failure ends the call.
// Attempts run strictly one after another and keep no state between them.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/suggested-edits/pkg/types"
)

// PageSource samples random candidates from a corpus.
type PageSource interface {
	RandomPages(ctx context.Context, site types.WikiSite) ([]types.Page, error)
	RandomImages(ctx context.Context, site types.WikiSite) ([]types.Page, error)
}

// EntitySource fetches structured-data records by id. Entities come back in
// the order the source lists them; ids without a record may be omitted.
type EntitySource interface {
	Entities(ctx context.Context, site types.WikiSite, ids []string) ([]types.Entity, error)
}

// SummarySource fetches the display summary for a title.
type SummarySource interface {
	Summary(ctx context.Context, title types.PageTitle) (*types.PageSummary, error)
}

// Stage names the step of an attempt that produced an error.
type Stage string

const (
	StageSampling       Stage = "sampling"
	StageCrossReference Stage = "cross-reference"
	StageSummary        Stage = "summary"
)

// StageError wraps a collaborator failure with the stage it came from.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrAttemptsExhausted is returned when a cap set with WithMaxAttempts is
// reached before any attempt found a candidate.
var ErrAttemptsExhausted = errors.New("no qualifying candidate found")

// ErrInvalidLanguage is returned for an empty or repeated language code.
var ErrInvalidLanguage = errors.New("invalid language code")

// Engine runs discoveries against its collaborators. An Engine holds only
// configuration, so one Engine may serve concurrent calls.
type Engine struct {
	pages     PageSource
	entities  EntitySource
	summaries SummarySource

	wikidata    types.WikiSite
	commons     types.WikiSite
	maxAttempts int
	log         io.Writer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLog writes one progress line per empty attempt to w.
func WithLog(w io.Writer) Option {
	return func(e *Engine) { e.log = w }
}

// WithMaxAttempts caps the number of attempts per call. Zero, the default,
// retries until a candidate is found or the context is cancelled.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) { e.maxAttempts = n }
}

// WithWikidata overrides the site entities of articles are fetched from.
func WithWikidata(site types.WikiSite) Option {
	return func(e *Engine) { e.wikidata = site }
}

// WithCommons overrides the media corpus images are sampled from.
func WithCommons(site types.WikiSite) Option {
	return func(e *Engine) { e.commons = site }
}

// New returns an Engine using the given collaborators.
func New(pages PageSource, entities EntitySource, summaries SummarySource, opts ...Option) *Engine {
	e := &Engine{
		pages:     pages,
		entities:  entities,
		summaries: summaries,
		wikidata:  types.WikidataSite(),
		commons:   types.CommonsSite(),
		log:       io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = io.Discard
	}
	return e
}

// attemptFunc runs one sample → filter (→ cross-reference) pass. found is
// false when no candidate qualified; item is then the zero value.
type attemptFunc[T any] func(ctx context.Context) (item T, found bool, err error)

// retryUntilFound runs attempt until it finds an item. Errors end the loop
// unchanged, except that a cancelled context is reported as ctx.Err().
func retryUntilFound[T any](ctx context.Context, e *Engine, mode types.DiscoveryMode, attempt attemptFunc[T]) (T, error) {
	var zero T
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if e.maxAttempts > 0 && n > e.maxAttempts {
			return zero, fmt.Errorf("%s: %w after %d attempts", mode, ErrAttemptsExhausted, e.maxAttempts)
		}

		item, found, err := attempt(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return zero, ctxErr
			}
			return zero, err
		}
		if found {
			return item, nil
		}
		fmt.Fprintf(e.log, "%s: attempt %d found no candidate, retrying\n", mode, n)
	}
}

// summary fetches the final display record. It is never called once the
// context is done.
func (e *Engine) summary(ctx context.Context, title types.PageTitle) (*types.PageSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := e.summaries.Summary(ctx, title)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &StageError{Stage: StageSummary, Err: err}
	}
	return s, nil
}

func checkLanguages(langs ...string) error {
	seen := make(map[string]bool, len(langs))
	for _, l := range langs {
		if l == "" {
			return fmt.Errorf("%w: empty", ErrInvalidLanguage)
		}
		if seen[l] {
			return fmt.Errorf("%w: source and target are both %q", ErrInvalidLanguage, l)
		}
		seen[l] = true
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/suggested-edits/internal/discovery"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

var descriptionCmd = &cobra.Command{
	Use:   "description",
	Short: "Find an article without a short description",
	Long: `Description samples random articles from the --lang Wikipedia until it
finds one that has no short description and is not a disambiguation page.

With --target, it instead finds an article whose Wikidata item has no
description in the target language while both editions have a page for it,
and prints the source-language description to translate. --require-source
skips items that have no source-language description either.`,
	RunE: runDescription,
}

func init() {
	descriptionCmd.Flags().String("lang", "en", "language edition to sample from")
	descriptionCmd.Flags().String("target", "", "target language for a translation task")
	descriptionCmd.Flags().Bool("require-source", true, "require a source-language description when translating")

	rootCmd.AddCommand(descriptionCmd)
}

func runDescription(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")
	target, _ := cmd.Flags().GetString("target")
	requireSource, _ := cmd.Flags().GetBool("require-source")
	site := types.ForLanguageCode(lang)

	if target == "" {
		return runDiscovery(cmd, func(ctx context.Context, e *discovery.Engine) (item, error) {
			s, err := e.NextArticleWithMissingDescription(ctx, site)
			if err != nil {
				return item{}, err
			}
			return descriptionItem(site, s), nil
		})
	}

	return runDiscovery(cmd, func(ctx context.Context, e *discovery.Engine) (item, error) {
		t, err := e.NextArticleForTranslation(ctx, site, target, requireSource)
		if err != nil {
			return item{}, err
		}
		return descriptionTranslationItem(t), nil
	})
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/suggested-edits/internal/discovery"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

var captionCmd = &cobra.Command{
	Use:   "caption",
	Short: "Find a Commons image without a caption",
	Long: `Caption samples random files from Wikimedia Commons until it finds one
without a caption in --lang.

With --source and --target, it instead finds a file captioned in the source
language but not in the target language, and prints the caption to
translate.`,
	RunE: runCaption,
}

func init() {
	captionCmd.Flags().String("lang", "en", "caption language to look for")
	captionCmd.Flags().String("source", "", "source language for a translation task")
	captionCmd.Flags().String("target", "", "target language for a translation task")

	rootCmd.AddCommand(captionCmd)
}

func runCaption(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")
	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	commons := types.CommonsSite()

	if (source == "") != (target == "") {
		return fmt.Errorf("--source and --target must be given together")
	}

	if target == "" {
		return runDiscovery(cmd, func(ctx context.Context, e *discovery.Engine) (item, error) {
			p, err := e.NextImageWithMissingCaption(ctx, lang)
			if err != nil {
				return item{}, err
			}
			return captionItem(commons, p), nil
		})
	}

	return runDiscovery(cmd, func(ctx context.Context, e *discovery.Engine) (item, error) {
		c, err := e.NextImageForCaptionTranslation(ctx, source, target)
		if err != nil {
			return item{}, err
		}
		return captionTranslationItem(commons, c), nil
	})
}

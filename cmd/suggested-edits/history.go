// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/suggested-edits/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List discoveries recorded in the local journal",
	Long: `History prints the most recent discoveries recorded with --record (or
journal.enabled in the config file), newest first. Use --yaml to export them.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().Bool("yaml", false, "output entries as YAML")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	limit, _ := cmd.Flags().GetInt("limit")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")

	store, err := journal.Open(cfg.Journal)
	if err != nil {
		return err
	}
	defer store.Close()

	if yamlOutput {
		return store.ExportYAML(cmd.Context(), os.Stdout, limit)
	}

	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No discoveries recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-24s  %-22s  %s\n", "Found", "Mode", "Wiki", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-20s  %-24s  %-22s  %s\n",
			e.FoundAt.Local().Format("2006-01-02 15:04:05"), e.Mode, e.Wiki, truncate(e.Title, 40))
	}
	return nil
}

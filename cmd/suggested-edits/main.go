// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the suggested-edits CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/suggested-edits/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the suggested-edits CLI.
var rootCmd = &cobra.Command{
	Use:   "suggested-edits",
	Short: "Find Wikipedia articles and Commons images that need a description or caption",
	Long: `suggested-edits samples random pages from Wikipedia and Wikimedia Commons
and returns one that lacks a short description or caption. With a target
language it instead finds an item whose description or caption exists in
the source language but is missing in the target language.

Sampling repeats until a qualifying item is found. Use --max-attempts to
bound the search, or interrupt with Ctrl-C.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(viper.GetString("secrets_dir"), os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./suggested-edits.yaml or ~/.config/suggested-edits/config.yaml)")
	pf.String("secrets-dir", ".secrets", "directory of credential files")
	pf.Duration("timeout", 0, "HTTP request timeout (default 30s)")
	pf.Float64("rps", 0, "maximum API requests per second (default 5)")
	pf.Int("max-retries", 0, "backoff retries on HTTP 429 (default 5)")
	pf.Int("batch-size", 0, "random pages sampled per attempt (default 10)")
	pf.Int("max-attempts", 0, "give up after this many empty attempts (0 = never)")
	pf.Int("count", 1, "number of items to find")
	pf.Int("concurrency", 0, "discoveries run at once when --count > 1 (default 4)")
	pf.Bool("json", false, "output results as JSON")
	pf.Bool("record", false, "record results in the local journal")
	pf.String("journal-dir", "", "directory holding journal.db (default ~/.local/share/suggested-edits)")
	pf.BoolP("verbose", "v", false, "log every empty attempt to stderr")

	bindFlags(map[string]string{
		"secrets_dir":            "secrets-dir",
		"discovery.timeout":      "timeout",
		"discovery.rps":          "rps",
		"discovery.max_retries":  "max-retries",
		"discovery.batch_size":   "batch-size",
		"discovery.max_attempts": "max-attempts",
		"discovery.concurrency":  "concurrency",
		"journal.enabled":        "record",
		"journal.dir":            "journal-dir",
	})
}

// bindFlags maps config keys to persistent flags so a flag set on the
// command line overrides the config file and environment.
func bindFlags(keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("suggested-edits")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "suggested-edits"))
		}
	}

	viper.SetEnvPrefix("SUGGESTED_EDITS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

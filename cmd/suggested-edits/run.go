// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/suggested-edits/internal/discovery"
	"github.com/pdiddy/suggested-edits/internal/httputil"
	"github.com/pdiddy/suggested-edits/internal/journal"
	"github.com/pdiddy/suggested-edits/internal/mwapi"
	"github.com/pdiddy/suggested-edits/internal/restbase"
	"github.com/pdiddy/suggested-edits/internal/secrets"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

const (
	defaultUserAgent   = "suggested-edits/0.1"
	defaultConcurrency = 4
)

// loadConfig assembles the configuration from the config file, environment
// and flags (flags win).
func loadConfig() types.Config {
	cfg := types.Config{
		Discovery: types.DiscoveryConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:           viper.GetDuration("discovery.timeout"),
				UserAgent:         loadedSecrets.UserAgent(defaultUserAgent),
				RequestsPerSecond: viper.GetFloat64("discovery.rps"),
				MaxRetries:        viper.GetInt("discovery.max_retries"),
				AccessToken:       loadedSecrets[secrets.KeyAPIToken],
			},
			BatchSize:   viper.GetInt("discovery.batch_size"),
			MaxAttempts: viper.GetInt("discovery.max_attempts"),
			Concurrency: viper.GetInt("discovery.concurrency"),
		},
		Journal: types.JournalConfig{
			Dir:     viper.GetString("journal.dir"),
			Enabled: viper.GetBool("journal.enabled"),
		},
	}
	if cfg.Discovery.Concurrency <= 0 {
		cfg.Discovery.Concurrency = defaultConcurrency
	}
	if cfg.Journal.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Journal.Dir = filepath.Join(home, ".local", "share", "suggested-edits")
		}
	}
	return cfg
}

// newEngine wires the API clients into a discovery engine. One HTTP client,
// and therefore one rate limiter, is shared by every request of the run.
func newEngine(cfg types.DiscoveryConfig, log io.Writer) *discovery.Engine {
	hc := httputil.NewClient(cfg.HTTPConfig)
	api := mwapi.NewClient(hc, cfg.BatchSize)
	summaries := restbase.NewClient(hc)
	return discovery.New(api, api, summaries,
		discovery.WithLog(log),
		discovery.WithMaxAttempts(cfg.MaxAttempts),
	)
}

// findFunc runs one discovery and converts its result for output.
type findFunc func(ctx context.Context, e *discovery.Engine) (item, error)

// runDiscovery executes find --count times, at most --concurrency at once,
// then prints and optionally records the results. Ctrl-C cancels every
// discovery still running.
func runDiscovery(cmd *cobra.Command, find findFunc) error {
	cfg := loadConfig()

	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("--count must be positive")
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var log io.Writer = io.Discard
	if verbose {
		log = os.Stderr
	}
	engine := newEngine(cfg.Discovery, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	items := make([]item, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Discovery.Concurrency)
	for i := range items {
		i := i
		g.Go(func() error {
			it, err := find(gctx, engine)
			if err != nil {
				return err
			}
			items[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Journal.Enabled {
		if err := recordItems(ctx, cfg.Journal, items); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return formatJSON(items, out)
	}
	formatItems(items, out)
	return nil
}

func recordItems(ctx context.Context, cfg types.JournalConfig, items []item) error {
	store, err := journal.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	for i := range items {
		e, err := store.Record(ctx, items[i].entry())
		if err != nil {
			return err
		}
		items[i].JournalID = e.ID
	}
	return nil
}

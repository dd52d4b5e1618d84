// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/suggested-edits/internal/discovery"
	"github.com/pdiddy/suggested-edits/internal/journal"
	"github.com/pdiddy/suggested-edits/pkg/types"
)

// newTestCommand returns a command carrying the flags runDiscovery reads,
// with its output captured in out.
func newTestCommand(t *testing.T, count int, out *bytes.Buffer) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("count", count, "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Bool("json", false, "")
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_MaxRetries(t *testing.T) {
	resetViper(t)
	viper.Set("discovery.max_retries", 7)
	viper.Set("journal.dir", t.TempDir())

	cfg := loadConfig()
	assert.Equal(t, 7, cfg.Discovery.MaxRetries)
	assert.Equal(t, defaultConcurrency, cfg.Discovery.Concurrency)
}

func TestRunDiscovery_RecordsEveryItem(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	viper.Set("journal.enabled", true)
	viper.Set("journal.dir", dir)
	viper.Set("discovery.concurrency", 2)

	var calls atomic.Int32
	find := func(ctx context.Context, _ *discovery.Engine) (item, error) {
		calls.Add(1)
		return item{
			Mode:  types.ModeDescription,
			Wiki:  "en.wikipedia.org",
			Title: "Goldfish",
			URL:   "https://en.wikipedia.org/wiki/Goldfish",
		}, nil
	}

	var out bytes.Buffer
	require.NoError(t, runDiscovery(newTestCommand(t, 3, &out), find))
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, out.String(), "Goldfish")

	store, err := journal.Open(types.JournalConfig{Dir: dir, Enabled: true})
	require.NoError(t, err)
	defer store.Close()
	entries, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, "Goldfish", e.Title)
		assert.NotEmpty(t, e.ID)
	}
}

func TestRunDiscovery_ErrorCancelsOthers(t *testing.T) {
	resetViper(t)
	viper.Set("journal.enabled", true)
	viper.Set("journal.dir", t.TempDir())
	viper.Set("discovery.concurrency", 3)

	boom := errors.New("sampling failed")
	var started, cancelled atomic.Int32
	find := func(ctx context.Context, _ *discovery.Engine) (item, error) {
		if started.Add(1) == 1 {
			return item{}, boom
		}
		<-ctx.Done()
		cancelled.Add(1)
		return item{}, ctx.Err()
	}

	var out bytes.Buffer
	err := runDiscovery(newTestCommand(t, 3, &out), find)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(2), cancelled.Load())
	assert.Empty(t, out.String())
}

func TestRunDiscovery_RejectsNonPositiveCount(t *testing.T) {
	resetViper(t)
	viper.Set("journal.dir", t.TempDir())

	find := func(ctx context.Context, _ *discovery.Engine) (item, error) {
		t.Error("find called")
		return item{}, nil
	}
	var out bytes.Buffer
	assert.Error(t, runDiscovery(newTestCommand(t, 0, &out), find))
}

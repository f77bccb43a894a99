package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ainews/internal/cache"
	"ainews/internal/config"
	"ainews/internal/feed"
	"ainews/internal/news"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch all feeds and update the cache without launching the UI",
	Long: `Poll every enabled feed, normalize the results and overwrite the local cache.

Useful from cron or before going offline. Individual feed failures are
printed as warnings; the command fails only when no feed could be fetched
and nothing was cached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store, err := cache.Open(config.CachePath())
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()

		svc := news.NewService(cfg, store, feed.NewMux(cfg.Endpoint))

		fmt.Printf("Fetching %d feed(s)...\n", len(cfg.EnabledFeeds()))
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result, err := svc.Refresh(ctx, true)
		if err != nil {
			return err
		}

		for _, w := range result.Warnings {
			fmt.Printf("  [warn] %v\n", w)
		}
		if result.Stale {
			fmt.Println("All feeds failed; keeping the previously cached articles.")
		}
		fmt.Printf("Cached %d article(s).\n", len(result.Articles))
		return nil
	},
}

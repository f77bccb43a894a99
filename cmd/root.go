package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ainews/internal/cache"
	"ainews/internal/classify"
	"ainews/internal/config"
	"ainews/internal/feed"
	"ainews/internal/news"
	"ainews/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagRefresh  bool
	flagCategory string
	flagSearch   string
)

var rootCmd = &cobra.Command{
	Use:   "ainews",
	Short: "TUI AI news aggregator",
	Long:  "ainews aggregates AI and machine learning news from configured RSS feeds into a filterable, searchable terminal dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(false)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch straight into the article grid",
	Long:  "Open ainews in browse mode, skipping the home screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(true)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "force refresh feeds on launch, bypassing the cache")
	rootCmd.Flags().StringVar(&flagCategory, "category", "", "start with a category filter (llm, ml, vision, ethics)")
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "start with a search term applied")

	browseCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "force refresh feeds on launch, bypassing the cache")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(cacheCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ainews %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runApp(browse bool) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	category := classify.All
	if flagCategory != "" {
		category, err = classify.ParseCategory(flagCategory)
		if err != nil {
			return fmt.Errorf("invalid --category value: %w", err)
		}
	}

	store, err := cache.Open(config.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer store.Close()

	svc := news.NewService(cfg, store, feed.NewMux(cfg.Endpoint))

	return tui.Run(tui.RunOpts{
		Service:      svc,
		PageSize:     cfg.GetPageSize(),
		ForceRefresh: flagRefresh,
		Category:     category,
		SearchTerm:   flagSearch,
		BrowseMode:   browse,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

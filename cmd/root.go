package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/config"
	"github.com/kerimyeniyildiz/lastmonitor/internal/query"
	"github.com/kerimyeniyildiz/lastmonitor/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagQuery  string
	flagSearch string
	flagLive   bool
)

var rootCmd = &cobra.Command{
	Use:   "lastmon",
	Short: "TUI monitoring dashboard for tweet and news collections",
	Long:  "lastmon renders a collected tweet and news archive as a terminal dashboard: daily volume, top queries, latest items, and a filterable live feed.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagQuery, "query", "", "preselect a query tag filter")
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "prefill the tweet text search")
	rootCmd.Flags().BoolVar(&flagLive, "live", false, "start on the live feed view")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(pingCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, client, err := buildDeps()
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOpts{
		Cfg:       cfg,
		Client:    client,
		Store:     query.NewStore(cfg.RefreshDuration(), 64),
		StartLive: flagLive,
		Query:     flagQuery,
		Search:    flagSearch,
		Version:   version,
	})
}

// buildDeps loads config and constructs the API client shared by
// every command. A .env next to the binary feeds the env overrides.
func buildDeps() (*config.Config, *api.Client, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.API.BaseURL == "" {
		return nil, nil, fmt.Errorf("api base URL not set: set %s or api.base_url in the config file", config.EnvBaseURL)
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.APITimeout(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("building api client: %w", err)
	}
	return cfg, client, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lastmon %s (commit: %s, built: %s)\n", version, commit, date)
	},
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

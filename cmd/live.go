package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kerimyeniyildiz/lastmonitor/internal/query"
	"github.com/kerimyeniyildiz/lastmonitor/internal/tui"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Open the live feed directly",
	Long:  "Launch the TUI on the merged tweet and news feed, skipping the home screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := buildDeps()
		if err != nil {
			return err
		}

		return tui.Run(tui.RunOpts{
			Cfg:       cfg,
			Client:    client,
			Store:     query.NewStore(cfg.RefreshDuration(), 64),
			StartLive: true,
			Version:   version,
		})
	},
}

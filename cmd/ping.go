package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/output"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the API is reachable and the token works",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := buildDeps()
		if err != nil {
			return err
		}

		p := output.NewPrinter()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.APITimeout())
		defer cancel()

		start := time.Now()
		err = client.Health(ctx)
		elapsed := time.Since(start).Round(time.Millisecond)

		if err == nil {
			p.Success("%s reachable in %s", cfg.API.BaseURL, elapsed)
			return nil
		}

		var apiErr *api.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			p.Error("authentication failed (%d): check %s", apiErr.StatusCode, "LASTMON_API_TOKEN")
		} else {
			p.Error("%s unreachable: %v", cfg.API.BaseURL, err)
		}
		return err
	},
}

package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/merchant-cli/internal/adapters/render/report"
	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCustomersCmd(app *app) *cobra.Command {
	customersCmd := &cobra.Command{
		Use:   "customers",
		Short: "Inspect customers",
	}
	customersCmd.AddCommand(newCustomersStatsCmd(app))
	return customersCmd
}

func newCustomersStatsCmd(app *app) *cobra.Command {
	var flags requestFlags
	var from string
	var to string
	var limit int

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show customer totals and the customer list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers, err := parseHeaders(flags.headers)
			if err != nil {
				return err
			}
			service, err := app.service()
			if err != nil {
				return err
			}

			req := domain.CustomerStatsRequest{UserID: flags.userID, From: from, To: to}

			var view application.CustomerStatsView
			err = runRequest(cmd, flags.asJSON, "Fetching customer stats...", func(ctx context.Context) error {
				var statsErr error
				view, statsErr = service.CustomerStats(ctx, req, headers)
				return statsErr
			})
			if err != nil {
				return err
			}

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			out, err := report.RenderCustomerStats(view, report.RenderOptions{Now: app.now(), MaxRows: limit})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags.register(statsCmd)
	statsCmd.Flags().StringVar(&from, "from", "", "Start of the reporting window (passed through to the backend)")
	statsCmd.Flags().StringVar(&to, "to", "", "End of the reporting window (passed through to the backend)")
	statsCmd.Flags().IntVar(&limit, "limit", 20, "Maximum customers listed (0 for all)")

	return statsCmd
}

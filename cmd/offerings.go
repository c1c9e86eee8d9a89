package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/merchant-cli/internal/adapters/render/report"
	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOfferingsCmd(app *app) *cobra.Command {
	offeringsCmd := &cobra.Command{
		Use:   "offerings",
		Short: "Manage the services a merchant sells",
	}
	offeringsCmd.AddCommand(newOfferingsCreateCmd(app))
	return offeringsCmd
}

func newOfferingsCreateCmd(app *app) *cobra.Command {
	var flags requestFlags
	var offering domain.ServiceModel

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new offering",
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

			offering.UserID = flags.userID

			var result application.Result[domain.ServiceModel]
			err = runRequest(cmd, flags.asJSON, "Creating offering...", func(ctx context.Context) error {
				var createErr error
				result, createErr = service.CreateOffering(ctx, offering, headers)
				return createErr
			})
			if err != nil {
				return err
			}

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			created := result.Data
			if created.Name == "" {
				created = offering
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.RenderResult("Offering created", result.Message, []report.Field{
				{Key: "id", Value: created.ID},
				{Key: "name", Value: created.Name},
				{Key: "price", Value: strconv.FormatFloat(created.Price, 'f', 2, 64) + " " + created.Currency},
				{Key: "duration", Value: durationLabel(created.DurationMinutes)},
				{Key: "category", Value: created.Category},
			}))
			return err
		},
	}

	flags.register(createCmd)
	createCmd.Flags().StringVar(&offering.Name, "name", "", "Offering name")
	createCmd.Flags().StringVar(&offering.Description, "description", "", "Offering description")
	createCmd.Flags().Float64Var(&offering.Price, "price", 0, "Price")
	createCmd.Flags().StringVar(&offering.Currency, "currency", "INR", "ISO currency code")
	createCmd.Flags().IntVar(&offering.DurationMinutes, "duration", 0, "Duration in minutes")
	createCmd.Flags().StringVar(&offering.Category, "category", "", "Category")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("price")

	return createCmd
}

func durationLabel(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return strconv.Itoa(minutes) + "m"
}

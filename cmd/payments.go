package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/merchant-cli/internal/adapters/render/report"
	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPaymentsCmd(app *app) *cobra.Command {
	paymentsCmd := &cobra.Command{
		Use:   "payments",
		Short: "Collect payments from customers",
	}
	paymentsCmd.AddCommand(newPaymentsLinkCmd(app))
	return paymentsCmd
}

func newPaymentsLinkCmd(app *app) *cobra.Command {
	var flags requestFlags
	var req domain.PaymentRequestModel
	var expiry string

	linkCmd := &cobra.Command{
		Use:   "link",
		Short: "Generate a payment link for a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers, err := parseHeaders(flags.headers)
			if err != nil {
				return err
			}
			expiryTime, err := resolveExpiry(expiry, app.now())
			if err != nil {
				return err
			}
			service, err := app.service()
			if err != nil {
				return err
			}

			req.UserID = flags.userID
			req.ExpiryTime = expiryTime

			var result application.Result[domain.PaymentLink]
			err = runRequest(cmd, flags.asJSON, "Generating payment link...", func(ctx context.Context) error {
				var linkErr error
				result, linkErr = service.CreatePaymentLink(ctx, req, headers)
				return linkErr
			})
			if err != nil {
				return err
			}

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			link := result.Data
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.RenderResult("Payment link ready", result.Message, []report.Field{
				{Key: "link", Value: link.LinkURL},
				{Key: "id", Value: link.LinkID},
				{Key: "amount", Value: strconv.FormatFloat(req.Amount, 'f', 2, 64) + " " + req.Currency},
				{Key: "status", Value: link.Status},
				{Key: "expires", Value: link.ExpiryTime},
			}))
			return err
		},
	}

	flags.register(linkCmd)
	linkCmd.Flags().Float64Var(&req.Amount, "amount", 0, "Amount to collect")
	linkCmd.Flags().StringVar(&req.Currency, "currency", "INR", "ISO currency code")
	linkCmd.Flags().StringVar(&req.CustomerName, "name", "", "Customer name")
	linkCmd.Flags().StringVar(&req.CustomerEmail, "email", "", "Customer email")
	linkCmd.Flags().StringVar(&req.CustomerPhone, "phone", "", "Customer phone")
	linkCmd.Flags().StringVar(&req.Purpose, "purpose", "", "Payment purpose shown to the customer")
	linkCmd.Flags().StringVar(&expiry, "expiry", "", "Link expiry: a duration from now (e.g. 48h) or an RFC3339 time")
	linkCmd.Flags().StringVar(&req.ReturnURL, "return-url", "", "URL the customer returns to after paying")
	_ = linkCmd.MarkFlagRequired("amount")

	return linkCmd
}

// resolveExpiry turns a relative duration into an absolute RFC3339 time.
// Absolute times are passed through once they parse.
func resolveExpiry(raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if d, err := time.ParseDuration(raw); err == nil {
		if d <= 0 {
			return "", fmt.Errorf("--expiry must be in the future, got %s", raw)
		}
		return now.Add(d).UTC().Format(time.RFC3339), nil
	}

	if _, err := time.Parse(time.RFC3339, raw); err != nil {
		return "", fmt.Errorf("--expiry %q is neither a duration nor an RFC3339 time", raw)
	}
	return raw, nil
}

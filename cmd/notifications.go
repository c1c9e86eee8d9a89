package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/merchant-cli/internal/adapters/render/report"
	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	notificationsCmd := &cobra.Command{
		Use:   "notifications",
		Short: "Send activity notifications",
	}
	notificationsCmd.AddCommand(newNotificationsCreateCmd(app))
	return notificationsCmd
}

func newNotificationsCreateCmd(app *app) *cobra.Command {
	var flags requestFlags
	var title string
	var message string
	var rawType string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a notification for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			activityType, err := parseActivityType(rawType)
			if err != nil {
				return err
			}
			headers, err := parseHeaders(flags.headers)
			if err != nil {
				return err
			}
			service, err := app.service()
			if err != nil {
				return err
			}

			req := domain.NotificationRequest{
				UserID:  flags.userID,
				Title:   title,
				Message: message,
				Type:    activityType,
			}

			var result application.Result[domain.Notification]
			err = runRequest(cmd, flags.asJSON, "Sending notification...", func(ctx context.Context) error {
				var createErr error
				result, createErr = service.CreateNotification(ctx, req, headers)
				return createErr
			})
			if err != nil {
				return err
			}

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			delivered := "pending"
			if result.Data.IsDelivered {
				delivered = "delivered"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.RenderResult("Notification created", result.Message, []report.Field{
				{Key: "id", Value: result.Data.ID},
				{Key: "type", Value: string(req.Type)},
				{Key: "title", Value: req.Title},
				{Key: "state", Value: delivered},
			}))
			return err
		},
	}

	flags.register(createCmd)
	createCmd.Flags().StringVar(&title, "title", "", "Notification title")
	createCmd.Flags().StringVar(&message, "message", "", "Notification body")
	createCmd.Flags().StringVar(&rawType, "type", string(domain.ActivityTypeInfo), "WARNING|ERROR|INFO|SUCCESS")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("message")

	return createCmd
}

func parseActivityType(raw string) (domain.ActivityType, error) {
	activityType := domain.ActivityType(strings.ToUpper(strings.TrimSpace(raw)))
	if !activityType.Valid() {
		return "", fmt.Errorf("unsupported --type %q (valid: WARNING, ERROR, INFO, SUCCESS)", raw)
	}
	return activityType, nil
}

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the backend access token",
	}
	authCmd.AddCommand(newAuthSetTokenCmd(app), newAuthClearTokenCmd(app))
	return authCmd
}

func newAuthSetTokenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-token [token]",
		Short: "Store the bearer token sent to the backend",
		Long:  "Store the bearer token sent to the backend. Reads the token from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) == 1 {
				token = args[0]
			} else {
				read, err := readToken(cmd.InOrStdin())
				if err != nil {
					return err
				}
				token = read
			}

			if err := app.credentials().SetToken(cmd.Context(), token); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "token saved")
			return err
		},
	}
}

func newAuthClearTokenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-token",
		Short: "Remove the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials().ClearToken(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "token cleared")
			return err
		},
	}
}

func readToken(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

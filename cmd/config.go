package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bnema/merchant-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI settings",
	}
	configCmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app))
	return configCmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	var asJSON bool

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := make(map[string]string, len(config.Keys()))
			for _, key := range config.Keys() {
				value, err := app.cfg.Get(key)
				if err != nil {
					return err
				}
				values[key] = value
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"path":   app.configRepo.Path(),
					"values": values,
				})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "# %s\n", app.configRepo.Path())
			for _, key := range config.Keys() {
				fmt.Fprintf(w, "%s\t%s\n", key, values[key])
			}
			return w.Flush()
		},
	}

	showCmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return showCmd
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting to the config file",
		Long:  "Persist one setting to the config file. Keys: " + strings.Join(config.Keys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.configRepo.Set(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "set %s in %s\n", args[0], app.configRepo.Path())
			return err
		},
	}
}

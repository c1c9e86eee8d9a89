package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string
	var debug bool

	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "merchant",
		Short:         "Merchant CLI: customers, offerings, payment links and notifications",
		Long:          "merchant talks to the merchant backend from the terminal: customer stats, new offerings, payment links and customer notifications.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(configPath, debug, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/merchant/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log requests at debug level")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newAuthCmd(app),
		newCustomersCmd(app),
		newOfferingsCmd(app),
		newPaymentsCmd(app),
		newNotificationsCmd(app),
	)

	return rootCmd
}

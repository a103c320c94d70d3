package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	var opts OutputOptions

	// root command, asks for the hours interactively
	rootCmd := &cobra.Command{
		Use:           "nightpay",
		Short:         "Calculate a babysitter's pay for one night",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Run(a.ReadHours(), opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "print the report as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.Breakdown, "breakdown", false, "print the pay for each rate band")

	// command for calculating pay from hours passed as arguments
	calcCmd := &cobra.Command{
		Use:   "calc [flags] [--] start bed end",
		Short: "Calculate pay for the given hours",
		Example: "  nightpay calc 17 20 2\n" +
			"  nightpay calc --breakdown 18 24 4\n" +
			"  nightpay calc -- -1 20 2",
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return a.HourCompletions(len(args)), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := RawInput{
				Start: ParseHour(args[0]),
				Bed:   ParseHour(args[1]),
				End:   ParseHour(args[2]),
			}

			return a.Run(raw, opts)
		},
	}

	// flags go before the hours, so a negative hour is read as an hour
	calcCmd.Flags().SetInterspersed(false)

	// command for printing the rate schedule
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the hourly rates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.ShowRates()
		},
	}

	// add commands
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(ratesCmd)

	return rootCmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-countdown/internal/service/control"
)

var (
	// output selects the list format.
	output string
	// interval between watch refreshes.
	interval = control.DefaultWatchInterval

	listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List alarms in creation order.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			options := controlOptions(cmd)

			return control.List(ctx, &options, output)
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Redraw the alarm list until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			options := controlOptions(cmd)

			return control.Watch(ctx, &options, interval)
		},
	}

	soundsCmd = &cobra.Command{
		Use:   "sounds",
		Short: "List the sounds an alarm can use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			options := controlOptions(cmd)

			return control.Sounds(ctx, &options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	listCmd.Flags().StringVarP(&output, "output", "o", control.OutputText, "output format: text or json")
	watchCmd.Flags().DurationVarP(&interval, "interval", "i", control.DefaultWatchInterval, "refresh interval")

	rootCmd.AddCommand(listCmd, watchCmd, soundsCmd)
}

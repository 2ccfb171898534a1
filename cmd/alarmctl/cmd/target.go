package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-countdown/internal/service/control"
)

var (
	stopCmd = &cobra.Command{
		Use:     "stop <id|#position>",
		Short:   "Silence a ringing alarm.",
		Long:    "Stops the sound of an alarm and marks it as played. Stopping a silent alarm has no effect.",
		Example: "  alarmctl stop #1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := commandContext()
			defer stop()

			options := controlOptions(cmd)

			return control.Stop(ctx, &options, args[0])
		},
	}

	removeCmd = &cobra.Command{
		Use:     "remove <id|#position>",
		Aliases: []string{"rm"},
		Short:   "Delete an alarm.",
		Long:    "Deletes an alarm, silencing it first if it is ringing. Alarms after it move up one position.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := commandContext()
			defer stop()

			options := controlOptions(cmd)

			return control.Remove(ctx, &options, args[0])
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(stopCmd, removeCmd)
}

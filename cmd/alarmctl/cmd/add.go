package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-countdown/internal/service/control"
)

var (
	// hours, minutes and seconds hold raw field input.
	hours, minutes, seconds string
	// sound names the catalog entry to ring with.
	sound string

	addCmd = &cobra.Command{
		Use:   "add",
		Short: "Add a countdown alarm.",
		Long: `Adds an alarm that rings once its countdown reaches zero.

Fields that are not numbers or are negative count as 0.
Minutes and seconds above 59 are reduced to 59.
A total duration of zero is rejected.`,
		Example: "  alarmctl add --minutes 25 --sound chime",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			options := &control.AddOptions{
				Options: controlOptions(cmd),
				Hours:   hours,
				Minutes: minutes,
				Seconds: seconds,
				Sound:   sound,
			}

			return control.Add(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	addCmd.Flags().StringVarP(&hours, "hours", "H", "0", "hours")
	addCmd.Flags().StringVarP(&minutes, "minutes", "m", "0", "minutes, 0-59")
	addCmd.Flags().StringVarP(&seconds, "seconds", "S", "0", "seconds, 0-59")
	addCmd.Flags().StringVar(&sound, "sound", "", "sound name as listed by the sounds command")

	rootCmd.AddCommand(addCmd)
}

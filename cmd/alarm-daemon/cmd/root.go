package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-countdown/internal/config"
	"github.com/oshokin/alarm-countdown/internal/logger"
	"github.com/oshokin/alarm-countdown/internal/service/daemon"
	"github.com/oshokin/alarm-countdown/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// mute replaces audio output with log lines.
	mute bool
	// allowMultiple skips the single-instance check.
	allowMultiple bool

	// rootCmd represents the base command for running the alarm daemon.
	rootCmd = &cobra.Command{
		Use:   "alarm-daemon [listen-address]",
		Short: "Run countdown alarms and ring them when they expire.",
		Long: `Starts the alarm engine and serves it over gRPC.

Every alarm counts down once per tick. When the countdown reaches zero the
alarm starts looping its sound until it is stopped or removed with alarmctl.
Listen address can be provided as argument to override config (e.g., 127.0.0.1:50061).
Alarms live in memory only and are lost when the daemon exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			defer logger.Sync()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &daemon.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				LogLevel:      logLevel,
				Mute:          mute,
				AllowMultiple: allowMultiple,
			}

			return daemon.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-daemon CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "log alarm sounds instead of playing them")
	rootCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "skip the single-instance check")

	err := rootCmd.Flags().MarkHidden("allow-multiple")
	if err != nil {
		panic(err)
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-countdown/internal/config"
	"github.com/oshokin/alarm-countdown/internal/logger"
	"github.com/oshokin/alarm-countdown/internal/service/control"
	"github.com/oshokin/alarm-countdown/internal/version"
)

// defaultLogLevel keeps diagnostics out of the way of command output.
const defaultLogLevel = "warn"

var errUnknownLogLevel = errors.New("unknown log level")

var (
	// configPath to the configuration YAML file.
	configPath string
	// serverAddress overrides the daemon address from config.
	serverAddress string
	// logLevel for diagnostics written to stderr.
	logLevel string

	// rootCmd represents the base command for controlling the daemon.
	rootCmd = &cobra.Command{
		Use:   "alarmctl",
		Short: "Manage countdown alarms on a running alarm-daemon.",
		Long: `Adds, lists, stops and removes countdown alarms held by alarm-daemon.

Alarms are addressed by the ID printed by "add" and "list", or by their
1-based list position written as #N (e.g., alarmctl stop #2).
Server address and call timeout come from the configuration file unless
--server is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownLogLevel, logLevel)
			}

			logger.SetLogger(logger.Logger().WithOptions(logger.WithLevel(level)))

			return nil
		},
	}
)

// Execute runs the alarmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// commandContext returns a context cancelled on SIGINT or SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// controlOptions collects the persistent flags for cmd.
func controlOptions(cmd *cobra.Command) control.Options {
	return control.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Out:           cmd.OutOrStdout(),
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&serverAddress, "server", "s", "", "daemon address, overrides configuration")
	flags.StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn or error")
}

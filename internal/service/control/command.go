package control

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/alarm-countdown/internal/config"
	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	"github.com/oshokin/alarm-countdown/internal/logger"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
	"github.com/oshokin/alarm-countdown/internal/service/common"
)

// Options selects the daemon to talk to.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides the daemon address from config when specified.
	ServerAddress string
	// Out receives command output.
	Out io.Writer
}

// AddOptions carries raw field input for a new alarm.
type AddOptions struct {
	Options

	// Hours, Minutes and Seconds are raw user input; see domain.Draft setters.
	Hours   string
	Minutes string
	Seconds string
	// Sound is the catalog name; empty selects the default sound.
	Sound string
}

// Output formats supported by List.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultWatchInterval matches the daemon tick cadence.
const DefaultWatchInterval = time.Second

var errUnknownOutput = errors.New("unknown output format")

// Add submits a new alarm and prints it.
func Add(ctx context.Context, opts *AddOptions) error {
	ctx = logger.WithName(ctx, "alarmctl")

	draft := domain.NewDraft()
	draft.SetHours(opts.Hours)
	draft.SetMinutes(opts.Minutes)
	draft.SetSeconds(opts.Seconds)

	sound, err := domain.ParseSound(opts.Sound)
	if err != nil {
		return err
	}

	draft.Sound = sound

	// Reject locally so the user sees the same notice without a round trip.
	if err = draft.Validate(); err != nil {
		return err
	}

	return withClient(ctx, &opts.Options, func(client *common.Client) error {
		created, err := client.AddAlarm(ctx, draft)
		if err != nil {
			return err
		}

		logger.DebugKV(ctx, "Alarm added", "alarm_id", created.ID)

		_, err = fmt.Fprintf(opts.Out, "Added alarm %s: %s (%s)\n",
			created.ID, domain.FormatRemaining(created.DurationTotalSeconds), created.Sound)

		return err
	})
}

// Stop silences an alarm by ID or "#N".
func Stop(ctx context.Context, opts *Options, target string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	return withClient(ctx, opts, func(client *common.Client) error {
		stopped, err := client.StopAlarm(ctx, target)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(opts.Out, "Stopped alarm %s\n", stopped.ID)

		return err
	})
}

// Remove deletes an alarm by ID or "#N".
func Remove(ctx context.Context, opts *Options, target string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	return withClient(ctx, opts, func(client *common.Client) error {
		if err := client.RemoveAlarm(ctx, target); err != nil {
			return err
		}

		_, err := fmt.Fprintf(opts.Out, "Removed alarm %s\n", target)

		return err
	})
}

// List prints all alarms as a table or as JSON.
func List(ctx context.Context, opts *Options, output string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	if output != OutputText && output != OutputJSON {
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}

	return withClient(ctx, opts, func(client *common.Client) error {
		list, err := client.ListAlarms(ctx)
		if err != nil {
			return err
		}

		if output == OutputJSON {
			return renderJSON(opts.Out, list)
		}

		return renderAlarms(opts.Out, pb.ToAlarms(list.GetAlarms()))
	})
}

// Sounds prints the sound catalog.
func Sounds(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmctl")

	return withClient(ctx, opts, func(client *common.Client) error {
		sounds, err := client.ListSounds(ctx)
		if err != nil {
			return err
		}

		for _, sound := range sounds {
			marker := ""
			if sound == domain.DefaultSound {
				marker = " (default)"
			}

			if _, err = fmt.Fprintf(opts.Out, "%s%s\n", sound, marker); err != nil {
				return err
			}
		}

		return nil
	})
}

// Watch reprints the alarm table every interval until ctx is cancelled.
// Poll failures are logged and retried on the next interval.
func Watch(ctx context.Context, opts *Options, interval time.Duration) error {
	ctx = logger.WithName(ctx, "alarmctl")

	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	return withClient(ctx, opts, func(client *common.Client) error {
		poll := func() {
			list, err := client.ListAlarms(ctx)
			if err != nil {
				logger.ErrorKV(ctx, "ListAlarms failed", "error", err)
				return
			}

			if err = renderFrame(opts.Out, pb.ToAlarms(list.GetAlarms()), time.Now()); err != nil {
				logger.ErrorKV(ctx, "Render failed", "error", err)
			}
		}

		poll()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				poll()
			}
		}
	})
}

// withClient loads settings, dials the daemon and runs fn with the client.
func withClient(ctx context.Context, opts *Options, fn func(client *common.Client) error) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	serverAddress := cfg.ListenAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to alarm daemon", "server_address", serverAddress)

	return fn(client)
}

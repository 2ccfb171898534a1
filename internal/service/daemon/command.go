package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/mitchellh/go-ps"
	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-countdown/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-countdown/internal/config"
	"github.com/oshokin/alarm-countdown/internal/engine"
	"github.com/oshokin/alarm-countdown/internal/logger"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
	"github.com/oshokin/alarm-countdown/internal/playback"
	"github.com/oshokin/alarm-countdown/internal/scheduler"
	"github.com/oshokin/alarm-countdown/internal/version"
)

// Options controls the alarm-daemon process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override.
	ListenAddress string
	// LogLevel overrides the configured log level when not empty.
	LogLevel string
	// Mute forces the silent player.
	Mute bool
	// AllowMultiple skips the single-instance check.
	AllowMultiple bool
	// Ready, when set, receives the bound listen address once serving.
	Ready chan<- string
}

// Run starts the engine and its gRPC server and blocks until ctx is canceled.
//
//nolint:funlen // Linear wiring of the daemon components.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-daemon")

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logLevel := cfg.LogLevel
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}

	if err = logger.SetLevelName(logLevel); err != nil {
		return err
	}

	if !opts.AllowMultiple {
		if err = ensureSingleInstance(ps.Processes, currentExecutable(), os.Getpid()); err != nil {
			return err
		}
	}

	listenAddress := cfg.ListenAddress
	if opts.ListenAddress != "" {
		listenAddress = opts.ListenAddress
	}

	catalog, err := playback.NewCatalog(cfg.Sounds)
	if err != nil {
		return fmt.Errorf("load sounds: %w", err)
	}

	player := newPlayer(ctx, catalog, cfg.Mute || opts.Mute)

	periodic := scheduler.NewPeriodic()
	defer periodic.Close()

	alarms := engine.New(ctx, player, periodic, engine.WithTickInterval(cfg.TickInterval))
	defer alarms.Close(ctx)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(ctx)))
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(alarms))

	logger.InfoKV(ctx, "Alarm daemon listening",
		"listen_address", lis.Addr().String(),
		"tick", cfg.TickInterval,
		"version", version.Short())

	if opts.Ready != nil {
		opts.Ready <- lis.Addr().String()
	}

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// newPlayer opens the audio device unless muted. Without a usable device the
// daemon keeps running with the silent player.
//
//nolint:ireturn // Callers only need the collaborator contract.
func newPlayer(ctx context.Context, catalog *playback.Catalog, mute bool) playback.Player {
	if mute {
		logger.Info(ctx, "Sound is muted, alarms will only be logged")
		return playback.NewLogPlayer(catalog)
	}

	player, err := playback.NewOtoPlayer(ctx, catalog)
	if err != nil {
		logger.WarnKV(ctx, "Audio unavailable, falling back to silent alarms", "error", err)
		return playback.NewLogPlayer(catalog)
	}

	return player
}

// loggingInterceptor logs each RPC at debug level and failures at warn level.
func loggingInterceptor(base context.Context) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = logger.ToContext(ctx, logger.FromContext(base).With("method", info.FullMethod))

		resp, err := handler(ctx, req)
		if err != nil {
			logger.WarnKV(ctx, "Request failed", "error", err)
		} else {
			logger.Debug(ctx, "Request served")
		}

		return resp, err
	}
}

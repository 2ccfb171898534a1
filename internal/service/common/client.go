//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/alarm-countdown/internal/config"
	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
	"github.com/oshokin/alarm-countdown/internal/version"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm daemon.
	conn *grpc.ClientConn
	// api is the AlarmService client interface.
	api pb.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errTargetRequired is returned when an alarm target is empty.
	errTargetRequired = errors.New("alarm id or #position must be provided")
	// errDraftRequired is returned when AddAlarm gets a nil draft.
	errDraftRequired = errors.New("draft must be provided")
)

// Dial establishes a gRPC connection to the alarm daemon.
// Note: this uses insecure transport credentials; the daemon is meant to
// listen on loopback.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent()))
	if err != nil {
		return nil, fmt.Errorf("dial alarm daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// AddAlarm schedules a new alarm from the draft.
func (c *Client) AddAlarm(ctx context.Context, draft *domain.Draft) (*domain.Alarm, error) {
	if draft == nil {
		return nil, errDraftRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.AddAlarm(callCtx, pb.FromDraft(draft))
	if err != nil {
		return nil, fmt.Errorf("add alarm: %w", err)
	}

	return pb.ToAlarm(resp.GetAlarm()), nil
}

// StopAlarm silences the alarm identified by ID or "#N".
func (c *Client) StopAlarm(ctx context.Context, target string) (*domain.Alarm, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, errTargetRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.StopAlarm(callCtx, &pb.StopAlarmRequest{Target: target})
	if err != nil {
		return nil, fmt.Errorf("stop alarm: %w", err)
	}

	return pb.ToAlarm(resp.GetAlarm()), nil
}

// RemoveAlarm deletes the alarm identified by ID or "#N".
func (c *Client) RemoveAlarm(ctx context.Context, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return errTargetRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.RemoveAlarm(callCtx, &pb.RemoveAlarmRequest{Target: target}); err != nil {
		return fmt.Errorf("remove alarm: %w", err)
	}

	return nil
}

// ListAlarms returns the raw response, as some callers render it directly.
func (c *Client) ListAlarms(ctx context.Context) (*pb.ListAlarmsResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAlarms(callCtx, new(pb.ListAlarmsRequest))
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return resp, nil
}

// ListSounds returns the sound catalog served by the daemon.
func (c *Client) ListSounds(ctx context.Context) ([]domain.Sound, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListSounds(callCtx, new(pb.ListSoundsRequest))
	if err != nil {
		return nil, fmt.Errorf("list sounds: %w", err)
	}

	return pb.ToSounds(resp), nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/alarm-countdown/internal/config"
	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
	"github.com/oshokin/alarm-countdown/internal/service/common"
	"github.com/oshokin/alarm-countdown/internal/service/control"
	"github.com/oshokin/alarm-countdown/internal/service/daemon"
)

// testTick keeps countdowns short without racing the assertions.
const testTick = 50 * time.Millisecond

// startDaemon runs a muted daemon on a free port and returns its address and config path.
// The daemon is stopped when the test finishes.
func startDaemon(t *testing.T) (addr, cfgPath string) {
	t.Helper()

	// Create cancellable context for daemon lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath = filepath.Join(t.TempDir(), "settings.yaml")

	settings := config.Default()
	settings.ListenAddress = "127.0.0.1:0"
	settings.Timeout = 3 * time.Second
	settings.TickInterval = testTick
	settings.Mute = true

	require.NoError(t, config.Save(cfgPath, settings))

	ready := make(chan string, 1)
	errs := make(chan error, 1)

	go func() {
		errs <- daemon.Run(ctx, &daemon.Options{
			ConfigPath:    cfgPath,
			AllowMultiple: true,
			Ready:         ready,
		})
	}()

	select {
	case addr = <-ready:
	case err := <-errs:
		cancel()
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("daemon did not start")
	}

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-errs)
	})

	return addr, cfgPath
}

func dial(t *testing.T, addr string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func listAlarms(ctx context.Context, t *testing.T, c *common.Client) []*domain.Alarm {
	t.Helper()

	list, err := c.ListAlarms(ctx)
	require.NoError(t, err)

	return pb.ToAlarms(list.GetAlarms())
}

// TestGRPC_AlarmLifecycle adds an alarm, waits for it to ring, stops and removes it.
func TestGRPC_AlarmLifecycle(t *testing.T) {
	t.Parallel()

	addr, _ := startDaemon(t)
	c := dial(t, addr)
	ctx := context.Background()

	draft := domain.NewDraft()
	draft.SetSeconds("2")
	draft.Sound = domain.SoundChime

	created, err := c.AddAlarm(ctx, draft)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, int64(2), created.DurationTotalSeconds)
	require.Equal(t, domain.SoundChime, created.Sound)
	require.False(t, created.IsRinging)

	// Two ticks bring the countdown to zero and start the ring.
	require.Eventually(t, func() bool {
		alarms := listAlarms(ctx, t, c)
		return len(alarms) == 1 && alarms[0].IsRinging
	}, 5*time.Second, testTick/2)

	stopped, err := c.StopAlarm(ctx, "#1")
	require.NoError(t, err)
	require.Equal(t, created.ID, stopped.ID)
	require.False(t, stopped.IsRinging)
	require.True(t, stopped.HasPlayedOnce)
	require.Zero(t, stopped.RemainingSeconds)

	// A stopped alarm never rings again.
	time.Sleep(4 * testTick)

	alarms := listAlarms(ctx, t, c)
	require.Len(t, alarms, 1)
	require.False(t, alarms[0].IsRinging)

	require.NoError(t, c.RemoveAlarm(ctx, created.ID))
	require.Empty(t, listAlarms(ctx, t, c))

	err = c.RemoveAlarm(ctx, created.ID)
	require.Equal(t, codes.NotFound, status.Code(err))
}

// TestGRPC_Validation maps domain rejections to InvalidArgument.
func TestGRPC_Validation(t *testing.T) {
	t.Parallel()

	addr, _ := startDaemon(t)
	c := dial(t, addr)
	ctx := context.Background()

	_, err := c.AddAlarm(ctx, domain.NewDraft())
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.StopAlarm(ctx, "#0")
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.StopAlarm(ctx, "#3")
	require.Equal(t, codes.NotFound, status.Code(err))

	require.Empty(t, listAlarms(ctx, t, c))
}

// TestGRPC_RemoveShiftsPositions keeps creation order after a removal.
func TestGRPC_RemoveShiftsPositions(t *testing.T) {
	t.Parallel()

	addr, _ := startDaemon(t)
	c := dial(t, addr)
	ctx := context.Background()

	ids := make([]string, 0, 3)

	for range 3 {
		draft := domain.NewDraft()
		draft.SetHours("1")

		created, err := c.AddAlarm(ctx, draft)
		require.NoError(t, err)

		ids = append(ids, created.ID)
	}

	require.NoError(t, c.RemoveAlarm(ctx, "#2"))

	alarms := listAlarms(ctx, t, c)
	require.Len(t, alarms, 2)
	require.Equal(t, ids[0], alarms[0].ID)
	require.Equal(t, ids[2], alarms[1].ID)

	sounds, err := c.ListSounds(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Sounds(), sounds)
}

// TestControl_Commands drives the alarmctl operations against a live daemon.
func TestControl_Commands(t *testing.T) {
	t.Parallel()

	addr, cfgPath := startDaemon(t)
	ctx := context.Background()

	var out bytes.Buffer

	opts := control.Options{ConfigPath: cfgPath, ServerAddress: addr, Out: &out}

	require.NoError(t, control.Add(ctx, &control.AddOptions{Options: opts, Minutes: "90", Sound: "siren"}))
	require.Contains(t, out.String(), "00h : 59m : 00s (siren)")

	out.Reset()
	require.NoError(t, control.List(ctx, &opts, control.OutputText))
	require.Contains(t, out.String(), "siren")
	require.Contains(t, out.String(), "counting")

	out.Reset()
	require.NoError(t, control.List(ctx, &opts, control.OutputJSON))
	require.Contains(t, out.String(), `"duration_total_seconds"`)
	require.Contains(t, out.String(), "3540")

	out.Reset()
	require.NoError(t, control.Sounds(ctx, &opts))
	require.Contains(t, out.String(), "classic (default)")

	out.Reset()
	require.NoError(t, control.Stop(ctx, &opts, "#1"))
	require.Contains(t, out.String(), "Stopped alarm")

	out.Reset()
	require.NoError(t, control.Remove(ctx, &opts, "#1"))
	require.Contains(t, out.String(), "Removed alarm #1")

	out.Reset()
	require.NoError(t, control.List(ctx, &opts, control.OutputText))
	require.Equal(t, "No alarms set\n", out.String())

	watchCtx, cancel := context.WithTimeout(ctx, 3*testTick)
	defer cancel()

	out.Reset()
	require.NoError(t, control.Watch(watchCtx, &opts, testTick))
	require.Contains(t, out.String(), "Alarms at")
}

package alarm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	"github.com/oshokin/alarm-countdown/internal/engine"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
)

var errTestBoom = errors.New("boom")

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	// alarms is the ordered collection.
	alarms []*domain.Alarm
	// addErr overrides the Add result when set.
	addErr error
	// stopped records Stop calls by ID.
	stopped []string
	// stoppedAt records StopAt calls by position.
	stoppedAt []int
	// removed records Remove calls by ID.
	removed []string
	// removedAt records RemoveAt calls by position.
	removedAt []int
	// listCalls counts List calls.
	listCalls int
	// seq numbers generated IDs.
	seq int
}

func (f *fakeService) Add(_ context.Context, draft *domain.Draft) (*domain.Alarm, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}

	draft.Normalize()

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	f.seq++
	a := domain.New(fmt.Sprintf("id-%d", f.seq), draft, time.Unix(100, 0).UTC())
	f.alarms = append(f.alarms, a)

	return a.Clone(), nil
}

func (f *fakeService) Stop(_ context.Context, id string) (*domain.Alarm, error) {
	for _, a := range f.alarms {
		if a.ID == id {
			a.IsRinging = false
			f.stopped = append(f.stopped, id)

			return a.Clone(), nil
		}
	}

	return nil, engine.ErrNotFound
}

func (f *fakeService) StopAt(_ context.Context, position int) (*domain.Alarm, error) {
	if position < 0 || position >= len(f.alarms) {
		return nil, engine.ErrNotFound
	}

	f.stoppedAt = append(f.stoppedAt, position)
	f.alarms[position].IsRinging = false

	return f.alarms[position].Clone(), nil
}

func (f *fakeService) Remove(_ context.Context, id string) error {
	for i, a := range f.alarms {
		if a.ID == id {
			f.alarms = append(f.alarms[:i], f.alarms[i+1:]...)
			f.removed = append(f.removed, id)

			return nil
		}
	}

	return engine.ErrNotFound
}

func (f *fakeService) RemoveAt(_ context.Context, position int) error {
	if position < 0 || position >= len(f.alarms) {
		return engine.ErrNotFound
	}

	f.removedAt = append(f.removedAt, position)
	f.alarms = append(f.alarms[:position], f.alarms[position+1:]...)

	return nil
}

func (f *fakeService) List() []*domain.Alarm {
	f.listCalls++

	return f.alarms
}

func stopReq(target string) *pb.StopAlarmRequest {
	return &pb.StopAlarmRequest{Target: target}
}

func removeReq(target string) *pb.RemoveAlarmRequest {
	return &pb.RemoveAlarmRequest{Target: target}
}

// TestServer_AddAlarm_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_AddAlarm_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	_, err := s.AddAlarm(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.AddAlarm(context.Background(), pb.FromDraft(&domain.Draft{}))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.AddAlarm(context.Background(), pb.FromDraft(&domain.Draft{Seconds: 3, Sound: "kazoo"}))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_AddAlarm_ClampsAndReturnsAlarm verifies the wire draft is normalized before use.
func TestServer_AddAlarm_ClampsAndReturnsAlarm(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	resp, err := s.AddAlarm(context.Background(), pb.FromDraft(&domain.Draft{Minutes: 75, Seconds: -3}))
	require.NoError(t, err)

	got := pb.ToAlarm(resp.GetAlarm())
	require.Equal(t, "id-1", got.ID)
	require.Equal(t, int64(59*60), got.DurationTotalSeconds)
	require.Equal(t, domain.DefaultSound, got.Sound)
}

// TestServer_StopAlarm covers ID and position targets and the not-found mapping.
func TestServer_StopAlarm(t *testing.T) {
	t.Parallel()

	svc := &fakeService{alarms: []*domain.Alarm{
		{ID: "a", IsRinging: true, HasPlayedOnce: true},
		{ID: "b", IsRinging: true, HasPlayedOnce: true},
	}}
	s := NewServer(svc)

	resp, err := s.StopAlarm(context.Background(), stopReq("a"))
	require.NoError(t, err)
	require.False(t, resp.GetAlarm().GetIsRinging())
	require.True(t, resp.GetAlarm().GetHasPlayedOnce())

	resp, err = s.StopAlarm(context.Background(), stopReq("#2"))
	require.NoError(t, err)
	require.Equal(t, "b", resp.GetAlarm().GetId())
	require.False(t, resp.GetAlarm().GetIsRinging())
	require.Equal(t, []string{"a"}, svc.stopped)
	require.Equal(t, []int{1}, svc.stoppedAt)

	_, err = s.StopAlarm(context.Background(), stopReq("#3"))
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.StopAlarm(context.Background(), stopReq("#zero"))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.StopAlarm(context.Background(), stopReq("missing"))
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.StopAlarm(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_StopAlarmByPositionIsSingleCall resolves "#N" inside one engine call.
func TestServer_StopAlarmByPositionIsSingleCall(t *testing.T) {
	t.Parallel()

	svc := &fakeService{alarms: []*domain.Alarm{{ID: "a"}, {ID: "b", IsRinging: true}}}
	s := NewServer(svc)

	resp, err := s.StopAlarm(context.Background(), stopReq(" #2 "))
	require.NoError(t, err)
	require.Equal(t, "b", resp.GetAlarm().GetId())
	require.Equal(t, []int{1}, svc.stoppedAt)
	require.Empty(t, svc.stopped)
	require.Zero(t, svc.listCalls)
}

// TestServer_RemoveAlarm routes position targets to RemoveAt and IDs to Remove.
func TestServer_RemoveAlarm(t *testing.T) {
	t.Parallel()

	svc := &fakeService{alarms: []*domain.Alarm{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	s := NewServer(svc)

	_, err := s.RemoveAlarm(context.Background(), removeReq("#2"))
	require.NoError(t, err)
	require.Equal(t, []int{1}, svc.removedAt)

	_, err = s.RemoveAlarm(context.Background(), removeReq("c"))
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, svc.removed)

	list, err := s.ListAlarms(context.Background(), new(pb.ListAlarmsRequest))
	require.NoError(t, err)

	alarms := pb.ToAlarms(list.GetAlarms())
	require.Len(t, alarms, 1)
	require.Equal(t, "a", alarms[0].ID)

	_, err = s.RemoveAlarm(context.Background(), removeReq(" "))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_ErrorMapping checks closed and unexpected errors.
func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{addErr: engine.ErrClosed})

	_, err := s.AddAlarm(context.Background(), pb.FromDraft(&domain.Draft{Seconds: 1}))
	require.Equal(t, codes.Unavailable, status.Code(err))

	s = NewServer(&fakeService{addErr: errTestBoom})

	_, err = s.AddAlarm(context.Background(), pb.FromDraft(&domain.Draft{Seconds: 1}))
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_ListSounds returns the full catalog.
func TestServer_ListSounds(t *testing.T) {
	t.Parallel()

	list, err := NewServer(new(fakeService)).ListSounds(context.Background(), new(pb.ListSoundsRequest))
	require.NoError(t, err)
	require.Equal(t, domain.Sounds(), pb.ToSounds(list))
	require.Equal(t, domain.DefaultSound.String(), list.GetDefaultSound())
}

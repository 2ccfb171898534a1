package pb

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// TestAlarmMapping checks that every alarm field survives the wire mapping.
func TestAlarmMapping(t *testing.T) {
	t.Parallel()

	want := &alarm.Alarm{
		ID:                   "a-1",
		DurationTotalSeconds: 3661,
		RemainingSeconds:     12,
		Sound:                alarm.SoundSiren,
		IsRinging:            true,
		HasPlayedOnce:        true,
		CreatedAt:            time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
	}

	got := ToAlarms(FromAlarms([]*alarm.Alarm{want}))
	require.Len(t, got, 1)
	require.Equal(t, want, got[0])

	require.Nil(t, FromAlarm(nil))
	require.Nil(t, ToAlarm(nil))
}

// TestAlarmMapping_Binary round-trips through the protobuf encoding.
func TestAlarmMapping_Binary(t *testing.T) {
	t.Parallel()

	resp := &ListAlarmsResponse{Alarms: FromAlarms([]*alarm.Alarm{
		{ID: "a", DurationTotalSeconds: math.MaxInt64, RemainingSeconds: math.MaxInt64 - 1},
		{ID: "b", IsRinging: true},
	})}

	data, err := proto.Marshal(resp)
	require.NoError(t, err)

	decoded := new(ListAlarmsResponse)
	require.NoError(t, proto.Unmarshal(data, decoded))
	require.True(t, proto.Equal(resp, decoded))

	got := ToAlarms(decoded.GetAlarms())
	require.Equal(t, int64(math.MaxInt64), got[0].DurationTotalSeconds)
	require.Equal(t, int64(math.MaxInt64-1), got[0].RemainingSeconds)
	require.True(t, got[1].CreatedAt.IsZero())
}

// TestDraftMapping keeps large hours exact and tolerates a nil request.
func TestDraftMapping(t *testing.T) {
	t.Parallel()

	require.Equal(t, &alarm.Draft{}, ToDraft(nil))

	d := &alarm.Draft{Hours: alarm.MaxHours + 1, Minutes: 90, Sound: alarm.SoundChime}
	require.Equal(t, d, ToDraft(FromDraft(d)))
	require.Equal(t, &AddAlarmRequest{}, FromDraft(nil))
}

// TestToAlarms_SkipsNil ignores missing list entries.
func TestToAlarms_SkipsNil(t *testing.T) {
	t.Parallel()

	got := ToAlarms([]*Alarm{nil, FromAlarm(&alarm.Alarm{ID: "x"})})
	require.Len(t, got, 1)
	require.Equal(t, "x", got[0].ID)

	sounds := FromSounds(alarm.Sounds())
	require.Equal(t, alarm.DefaultSound.String(), sounds.GetDefaultSound())
	require.Equal(t, alarm.Sounds(), ToSounds(sounds))
}

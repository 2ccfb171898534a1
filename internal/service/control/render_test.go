package control

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
)

func sampleAlarms() []*domain.Alarm {
	return []*domain.Alarm{
		{ID: "a1", DurationTotalSeconds: 90, RemainingSeconds: 61, Sound: domain.SoundClassic},
		{ID: "b2", DurationTotalSeconds: 5, Sound: domain.SoundSiren, IsRinging: true, HasPlayedOnce: true},
	}
}

// TestRenderAlarmsTable prints one aligned row per alarm with 1-based positions.
func TestRenderAlarmsTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, renderAlarms(&buf, sampleAlarms()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"#", "ID", "SOUND", "REMAINING", "STATUS"}, strings.Fields(lines[0]))
	require.Contains(t, lines[1], "00h : 01m : 01s")
	require.True(t, strings.HasPrefix(lines[1], "1 "))
	require.Contains(t, lines[2], "siren")
	require.Contains(t, lines[2], "ringing")

	// Columns are aligned so SOUND starts at the same offset in every row.
	require.Equal(t, strings.Index(lines[0], "SOUND"), strings.Index(lines[1], "classic"))
}

// TestRenderAlarmsEmpty prints a notice instead of an empty table.
func TestRenderAlarmsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, renderAlarms(&buf, nil))
	require.Equal(t, "No alarms set\n", buf.String())
}

// TestRenderFrame clears the screen and stamps the refresh time.
func TestRenderFrame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	now := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)

	require.NoError(t, renderFrame(&buf, sampleAlarms(), now))
	require.True(t, strings.HasPrefix(buf.String(), clearScreen))
	require.Contains(t, buf.String(), "Alarms at 09:30:15")
	require.Contains(t, buf.String(), "a1")
}

// TestRenderJSON emits the wire response with proto field names.
func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	list := &pb.ListAlarmsResponse{Alarms: pb.FromAlarms(sampleAlarms())}

	require.NoError(t, renderJSON(&buf, list))

	var decoded struct {
		Alarms []map[string]any `json:"alarms"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Alarms, 2)
	require.Equal(t, "a1", decoded.Alarms[0]["id"])
	// int64 fields are encoded as strings so large values stay exact.
	require.Equal(t, "61", decoded.Alarms[0]["remaining_seconds"])
	require.Equal(t, true, decoded.Alarms[1]["is_ringing"])
	require.Equal(t, false, decoded.Alarms[0]["is_ringing"])
}

// TestListRejectsUnknownOutput fails before dialing the daemon.
func TestListRejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := List(context.Background(), &Options{Out: &buf}, "yaml")
	require.ErrorIs(t, err, errUnknownOutput)
	require.Empty(t, buf.String())
}

// TestAddRejectsLocally validates the draft before dialing the daemon.
func TestAddRejectsLocally(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	var validationErr *domain.ValidationError

	err := Add(context.Background(), &AddOptions{Options: Options{Out: &buf}, Seconds: "abc"})
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "duration", validationErr.Field)

	err = Add(context.Background(), &AddOptions{Options: Options{Out: &buf}, Seconds: "5", Sound: "gong"})
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "sound", validationErr.Field)
}

package alarm

import (
	"fmt"
	"time"
)

// Alarm is one scheduled countdown.
type Alarm struct {
	// ID is the durable identifier assigned at creation.
	ID string
	// DurationTotalSeconds is the countdown length; always positive.
	DurationTotalSeconds int64
	// RemainingSeconds decreases once per tick until the alarm rings.
	RemainingSeconds int64
	// Sound is fixed at creation.
	Sound Sound
	// IsRinging is true while the sound plays.
	IsRinging bool
	// HasPlayedOnce guards against starting playback twice.
	HasPlayedOnce bool
	// CreatedAt is when the alarm was added.
	CreatedAt time.Time
}

// New builds a fresh alarm from a validated draft.
func New(id string, draft *Draft, createdAt time.Time) *Alarm {
	total := draft.TotalSeconds()

	return &Alarm{
		ID:                   id,
		DurationTotalSeconds: total,
		RemainingSeconds:     total,
		Sound:                draft.Sound,
		CreatedAt:            createdAt,
	}
}

// Clone returns a copy of the alarm to avoid leaking internal references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// Status describes the alarm lifecycle stage for display.
func (a *Alarm) Status() string {
	switch {
	case a.IsRinging:
		return "ringing"
	case a.HasPlayedOnce:
		return "stopped"
	default:
		return "counting"
	}
}

// FormatRemaining renders a countdown as "HHh : MMm : SSs".
// Negative input is treated as zero; hours are not capped at two digits.
func FormatRemaining(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute

	return fmt.Sprintf("%02dh : %02dm : %02ds", hours, minutes, secs)
}

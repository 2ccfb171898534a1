package alarm

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute

	// maxMinutesOrSeconds is the upper clamp for the minutes and seconds fields.
	maxMinutesOrSeconds = 59

	// MaxHours is the largest hours value whose total still fits in int64.
	MaxHours = (math.MaxInt64 - maxMinutesOrSeconds*secondsPerMinute - maxMinutesOrSeconds) / secondsPerHour
)

// Draft is the not yet committed input for a new alarm.
// Field setters never fail: out-of-range values are clamped and garbage
// becomes zero, so only a zero total can be rejected later.
type Draft struct {
	// Hours is not clamped; Validate rejects values above MaxHours.
	Hours int64
	// Minutes is clamped to [0, 59].
	Minutes int64
	// Seconds is clamped to [0, 59].
	Seconds int64
	// Sound is the selected catalog entry.
	Sound Sound
}

// NewDraft returns an empty draft with the default sound selected.
func NewDraft() *Draft {
	return &Draft{Sound: DefaultSound}
}

// SetHours parses raw user input into the hours field.
func (d *Draft) SetHours(raw string) {
	d.Hours = parseField(raw, false)
}

// SetMinutes parses raw user input into the minutes field.
func (d *Draft) SetMinutes(raw string) {
	d.Minutes = parseField(raw, true)
}

// SetSeconds parses raw user input into the seconds field.
func (d *Draft) SetSeconds(raw string) {
	d.Seconds = parseField(raw, true)
}

// Normalize applies the field recovery policy to values that were set directly.
func (d *Draft) Normalize() {
	d.Hours = clampField(d.Hours, false)
	d.Minutes = clampField(d.Minutes, true)
	d.Seconds = clampField(d.Seconds, true)

	if d.Sound == "" {
		d.Sound = DefaultSound
	}
}

// TotalSeconds returns the alarm duration described by the draft.
func (d *Draft) TotalSeconds() int64 {
	return d.Hours*secondsPerHour + d.Minutes*secondsPerMinute + d.Seconds
}

// Validate rejects drafts that cannot be committed.
func (d *Draft) Validate() error {
	if !d.Sound.IsKnown() {
		_, err := ParseSound(string(d.Sound))
		return err
	}

	if d.Hours > MaxHours {
		return errTooManyHours()
	}

	if d.TotalSeconds() <= 0 {
		return errZeroDuration()
	}

	return nil
}

// Reset clears the time fields. The sound selection is kept.
func (d *Draft) Reset() {
	d.Hours = 0
	d.Minutes = 0
	d.Seconds = 0
}

// Clone returns a copy of the draft.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}

	cloned := *d

	return &cloned
}

// parseField reads the leading integer of raw, so "3.7" is 3 and "12abc"
// is 12. Input without leading digits is 0. Values too large for int64
// saturate and are rejected later by Validate.
func parseField(raw string, bounded bool) int64 {
	number := leadingInteger(strings.TrimSpace(raw))

	value, err := strconv.ParseInt(number, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}

	return clampField(value, bounded)
}

// leadingInteger returns the optional sign and the digits that start s.
func leadingInteger(s string) string {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return ""
	}

	return s[:end]
}

func clampField(value int64, bounded bool) int64 {
	switch {
	case value < 0:
		return 0
	case bounded && value > maxMinutesOrSeconds:
		return maxMinutesOrSeconds
	default:
		return value
	}
}

package alarm

import (
	"fmt"
	"strconv"
)

// ValidationError reports user input that cannot become an alarm.
// It is the only error kind the domain produces; callers surface it to the
// user as a blocking notice.
type ValidationError struct {
	// Field names the offending input ("duration", "hours", "sound").
	Field string
	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// errZeroDuration builds the rejection for a draft that totals zero seconds.
func errZeroDuration() *ValidationError {
	return &ValidationError{
		Field:  "duration",
		Reason: "please set a valid alarm time",
	}
}

// errTooManyHours builds the rejection for an hours value that cannot be
// represented in seconds.
func errTooManyHours() *ValidationError {
	return &ValidationError{
		Field:  "hours",
		Reason: "at most " + strconv.FormatInt(MaxHours, 10) + " hours are supported",
	}
}

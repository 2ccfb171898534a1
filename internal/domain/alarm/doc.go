// Package alarm contains core domain types for countdown alarms.
//
// It defines Alarm (one countdown and its ringing state), Draft (input not yet
// committed, with the clamp-and-coerce recovery policy), the closed Sound
// catalog, ValidationError and the FormatRemaining display helper.
package alarm

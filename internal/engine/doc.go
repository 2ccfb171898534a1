// Package engine implements the alarm countdown engine.
//
// An Engine keeps alarms in insertion order, decrements them once per tick,
// starts a looping sound when a countdown reaches zero and tears playback down
// on Stop, Remove and Close. Playback handles are keyed by the alarm's durable
// ID, so removing an alarm never reassigns another alarm's sound.
//
// Every tick derives a new slice of cloned records instead of mutating the
// previous one; callers only ever receive clones.
package engine

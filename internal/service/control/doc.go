// Package control implements the alarmctl operations.
//
// Each operation loads settings, dials the daemon, performs one or more RPCs
// and renders the result as text or JSON.
package control

// Package daemon runs the alarm engine as a long-lived process.
//
// Run loads settings, refuses to start next to another daemon, builds the
// sound catalog and player, starts the engine on a periodic scheduler and
// serves it over gRPC until the context is cancelled.
package daemon

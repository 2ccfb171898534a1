// Package config defines settings used by the alarm binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC listen address, RPC timeout, tick cadence,
// log level, mute switch and optional WAV overrides for catalog sounds.
package config

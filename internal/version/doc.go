// Package version holds build metadata injected through ldflags and the
// shared `version` subcommand for both binaries.
package version

package version

import "fmt"

// userAgentPrefix names the project in gRPC user agents.
const userAgentPrefix = "alarm-countdown"

var (
	// Version is the semantic version, set with -ldflags "-X".
	Version = "0.1.0"
	// Commit is the short git SHA, "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns the version with commit and build time.
func Full() string {
	return fmt.Sprintf("alarm-countdown %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// UserAgent identifies alarmctl to the daemon.
func UserAgent() string {
	return userAgentPrefix + "/" + Version
}

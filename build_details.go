package oasexplorer

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"

	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("oasexplorer/%s", version)
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}

// Package build provides version and build information for labt.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// VersionString returns the short version line used by --version,
// e.g. "1.2.0 (commit: 3f9c2a1b)".
func VersionString() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Details returns the multi-line version report printed by `labt version`.
func Details() string {
	return fmt.Sprintf("labt version %s\nBuilt from commit: %s\nBuild date: %s\nGo version: %s\n",
		Version, Commit, BuildDate, runtime.Version())
}

// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Populated via -ldflags "-X github.com/dkoosis/epiccheck-report/internal/version.Version=..." by mage build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, CommitHash, BuildDate)
}

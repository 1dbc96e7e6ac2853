// Package version holds build metadata, overridden at release time via
// -ldflags "-X github.com/mj1618/screencap/internal/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

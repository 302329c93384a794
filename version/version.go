package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string, falling back to the module version
// recorded by go install
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns the version with commit and build date when known
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit == "unknown" {
		return v
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, GitCommit, BuildDate)
}

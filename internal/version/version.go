package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/seagrayinc/oledcfg/internal/version.Version=v0.2.0 \
//	                   -X github.com/seagrayinc/oledcfg/internal/version.Commit=abc1234"
//
// If unset, the commit is taken from Go's embedded VCS info when available.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
					Commit = setting.Value[:7]
				}
			}
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// Full returns the version string including the commit hash.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/snaptrail/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the version for logs and the CLI. Commit and build
// time fall back to the VCS stamp embedded by the go tool.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// Package version reports how the cmapgen binary was built. Release builds
// inject values with -ldflags; other builds fall back to the module and VCS
// details the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	// Name is the program name used in version strings and the User-Agent.
	Name = "cmapgen"

	devVersion = "dev"
	unknown    = "unknown"
)

// Injected at build time, e.g.
//
//	-ldflags "-X github.com/viscm-web/cmapgen/internal/version.Version=x.y.z
//	          -X github.com/viscm-web/cmapgen/internal/version.Commit=$(git rev-parse HEAD)
//	          -X github.com/viscm-web/cmapgen/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version = devVersion
	Commit  = unknown
	Date    = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information, preferring injected values.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := readBuildInfo(); ok {
		applyBuildInfo(&info, bi)
	}
	return info
}

// applyBuildInfo fills values that were not injected from the embedded
// module version and vcs.* settings.
func applyBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String returns a human-readable version string.
func String() string {
	return GetInfo().String()
}

// String formats info for the version command.
func (info Info) String() string {
	if info.Commit == unknown {
		return fmt.Sprintf("%s version %s (%s, %s)", Name, info.Version, info.GoVersion, info.Platform)
	}

	commit := shortCommit(info.Commit)
	if info.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
		Name, info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// Short returns the bare version, as shown by --version.
func Short() string {
	return GetInfo().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

package version

import (
	"runtime/debug"

	"github.com/fatih/color"
)

// Build metadata for the csfmt CLI. GitCommit and BuildDate are settable at
// build time via -ldflags; when left empty they fall back to the VCS stamps
// Go embeds in the binary.

const (
	major      = "0"
	minor      = "1"
	patch      = "0"
	prerelease = "dev"
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI, colored per component.
	Version = semver()

	// GitCommit is the git commit hash.
	GitCommit = ""

	// BuildDate is the build date in ISO-8601.
	BuildDate = ""
)

func semver() string {
	v := majorColor.Sprint(major) + "." + minorColor.Sprint(minor) + "." + patchColor.Sprint(patch)
	if prerelease != "" {
		v += "-" + prerelease
	}
	return v
}

func init() {
	if GitCommit != "" && BuildDate != "" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if GitCommit == "" {
				GitCommit = s.Value
			}
		case "vcs.time":
			if BuildDate == "" {
				BuildDate = s.Value
			}
		}
	}
}

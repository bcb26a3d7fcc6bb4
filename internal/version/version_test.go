package version

import (
	"strings"
	"testing"
)

func TestVersionHasSemverParts(t *testing.T) {
	for _, part := range []string{major, minor, patch, prerelease} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q missing component %q", Version, part)
		}
	}
}

func TestBuildMetadataCanBeOverridden(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	// Simulate build-time -ldflags overrides.
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", GitCommit)
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q", BuildDate)
	}
}

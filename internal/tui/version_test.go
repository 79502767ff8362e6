package tui

import "testing"

func TestVersionLabel(t *testing.T) {
	prevCommit, prevBuild := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = prevCommit, prevBuild })

	GitCommit, BuildTime = "unknown", "unknown"
	if got := VersionLabel(); got != AppVersion {
		t.Fatalf("VersionLabel() = %q, want %q", got, AppVersion)
	}
	GitCommit = "abc123"
	if got := VersionLabel(); got != AppVersion+" (abc123 unknown)" {
		t.Fatalf("VersionLabel() = %q", got)
	}
}

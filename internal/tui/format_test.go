package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/intervals/internal/plan"
)

func TestFormatTimeRemaining(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "00:00"},
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{4*time.Minute + time.Second, "04:01"},
		{12*time.Minute + 500*time.Millisecond, "12:00"},
	}
	for _, tc := range cases {
		if got := FormatTimeRemaining(tc.in); got != tc.want {
			t.Fatalf("FormatTimeRemaining(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(31 * time.Minute); got != "31:00" {
		t.Fatalf("formatDuration = %q", got)
	}
	if got := formatDuration(time.Hour + 2*time.Minute + 3*time.Second); got != "01:02:03" {
		t.Fatalf("formatDuration = %q", got)
	}
	if got := formatDuration(-time.Minute); got != "00:00" {
		t.Fatalf("formatDuration = %q", got)
	}
}

func TestFormatTimestampUsesUTCMillis(t *testing.T) {
	loc := time.FixedZone("X", 2*3600)
	ts := time.Date(2024, 3, 1, 9, 0, 1, 250_000_000, loc)
	if got := FormatTimestamp(ts); got != "2024-03-01T07:00:01.250Z" {
		t.Fatalf("FormatTimestamp = %q", got)
	}
}

func TestFormatSegment(t *testing.T) {
	if got := FormatSegment(plan.Segment{Kind: plan.KindRun, Repetition: 2}, 3); got != "Run 2 of 3" {
		t.Fatalf("FormatSegment(run) = %q", got)
	}
	if got := FormatSegment(plan.Segment{Kind: plan.KindWalk, Repetition: 1}, 3); got != "Walk 1" {
		t.Fatalf("FormatSegment(walk) = %q", got)
	}
	if got := FormatSegment(plan.Segment{Kind: plan.KindCooldown}, 3); got != "Cooldown" {
		t.Fatalf("FormatSegment(cooldown) = %q", got)
	}
}

package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/plan"
)

// FormatTimeRemaining formats remaining time as mm:ss.
func FormatTimeRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatTimestamp renders a wall-clock instant in UTC with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(config.TimestampLayout)
}

// FormatSegment names a plan segment for display (e.g. "Run 2 of 3").
func FormatSegment(s plan.Segment, count int) string {
	if s.Repetition > 0 && s.Kind == plan.KindRun {
		return fmt.Sprintf("%s %d of %d", s.Kind, s.Repetition, count)
	}
	if s.Repetition > 0 {
		return fmt.Sprintf("%s %d", s.Kind, s.Repetition)
	}
	return s.Kind.String()
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

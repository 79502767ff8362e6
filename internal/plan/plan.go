// Package plan lays out the workout a configuration describes: a warmup,
// alternating run and walk segments, and a cooldown.
package plan

import (
	"time"

	"github.com/akyairhashvil/intervals/internal/models"
)

type Kind int

const (
	KindWarmup Kind = iota
	KindRun
	KindWalk
	KindCooldown
)

func (k Kind) String() string {
	switch k {
	case KindWarmup:
		return "Warmup"
	case KindRun:
		return "Run"
	case KindWalk:
		return "Walk"
	case KindCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// Segment is one contiguous block of the workout. Repetition is 1-based for
// run and walk segments and 0 otherwise.
type Segment struct {
	Kind       Kind
	Repetition int
	Duration   time.Duration
}

type Plan struct {
	Configuration models.Configuration
	Segments      []Segment
}

// Build expands cfg into segments. Walks separate runs; the last run goes
// straight into the cooldown.
func Build(cfg models.Configuration) Plan {
	minutes := func(n int) time.Duration { return time.Duration(n) * time.Minute }

	p := Plan{Configuration: cfg}
	if cfg.WarmupCooldown > 0 {
		p.Segments = append(p.Segments, Segment{Kind: KindWarmup, Duration: minutes(cfg.WarmupCooldown)})
	}
	for i := 1; i <= cfg.Count; i++ {
		p.Segments = append(p.Segments, Segment{Kind: KindRun, Repetition: i, Duration: minutes(cfg.Run)})
		if i < cfg.Count {
			p.Segments = append(p.Segments, Segment{Kind: KindWalk, Repetition: i, Duration: minutes(cfg.Walk)})
		}
	}
	if cfg.WarmupCooldown > 0 {
		p.Segments = append(p.Segments, Segment{Kind: KindCooldown, Duration: minutes(cfg.WarmupCooldown)})
	}
	return p
}

func (p Plan) Total() time.Duration {
	var total time.Duration
	for _, s := range p.Segments {
		total += s.Duration
	}
	return total
}

// Position locates an elapsed duration within the plan.
type Position struct {
	Index     int
	Segment   Segment
	Remaining time.Duration
	Finished  bool
}

func (p Plan) At(elapsed time.Duration) Position {
	if len(p.Segments) == 0 {
		return Position{Index: -1, Finished: true}
	}
	if elapsed < 0 {
		elapsed = 0
	}
	var end time.Duration
	for i, s := range p.Segments {
		end += s.Duration
		if elapsed < end {
			return Position{Index: i, Segment: s, Remaining: end - elapsed}
		}
	}
	last := len(p.Segments) - 1
	return Position{Index: last, Segment: p.Segments[last], Finished: true}
}

// Progress is the completed fraction of the plan in [0, 1].
func (p Plan) Progress(elapsed time.Duration) float64 {
	total := p.Total()
	if total <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

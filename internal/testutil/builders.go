package testutil

import (
	"time"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/models"
	"github.com/akyairhashvil/intervals/internal/session"
)

// Epoch is a fixed instant tests measure offsets from.
var Epoch = time.Date(2024, time.March, 1, 7, 0, 0, 0, time.UTC)

// At returns Epoch shifted by ms milliseconds.
func At(ms int) time.Time {
	return Epoch.Add(time.Duration(ms) * time.Millisecond)
}

// ConfigBuilder provides fluent API for creating test configurations.
type ConfigBuilder struct {
	cfg models.Configuration
}

func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: config.DefaultConfiguration()}
}

func (b *ConfigBuilder) WithRun(n int) *ConfigBuilder {
	b.cfg.Run = n
	return b
}

func (b *ConfigBuilder) WithWalk(n int) *ConfigBuilder {
	b.cfg.Walk = n
	return b
}

func (b *ConfigBuilder) WithWarmup(n int) *ConfigBuilder {
	b.cfg.WarmupCooldown = n
	return b
}

func (b *ConfigBuilder) WithCount(n int) *ConfigBuilder {
	b.cfg.Count = n
	return b
}

func (b *ConfigBuilder) Build() models.Configuration {
	return b.cfg
}

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	cfg     models.Configuration
	started *time.Time
	ticks   []time.Time
	touches []time.Time
}

func NewSession(cfg models.Configuration) *SessionBuilder {
	return &SessionBuilder{cfg: cfg}
}

func (b *SessionBuilder) StartedAt(t time.Time) *SessionBuilder {
	b.started = &t
	return b
}

func (b *SessionBuilder) TickAt(t time.Time) *SessionBuilder {
	b.ticks = append(b.ticks, t)
	return b
}

func (b *SessionBuilder) TouchAt(t time.Time) *SessionBuilder {
	b.touches = append(b.touches, t)
	return b
}

// Build replays start, ticks and touches in that order.
func (b *SessionBuilder) Build() session.Session {
	s := session.New(b.cfg)
	if b.started == nil {
		return s
	}
	s, _ = s.Start(*b.started)
	for _, t := range b.ticks {
		s = s.OnPeriodicTick(t)
	}
	for _, t := range b.touches {
		s = s.OnUserTouch(t)
	}
	return s
}

// Package session is the interval session state machine. A session is either
// configuring or running; transitions are pure and report the side effects
// the surrounding runtime must carry out as Effect values.
package session

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/models"
)

// Mode is the high-level mode of a session.
type Mode int

const (
	ModeConfiguring Mode = iota
	ModeRunning
)

func (m Mode) String() string {
	switch m {
	case ModeConfiguring:
		return "configuring"
	case ModeRunning:
		return "running"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is one of Configuring or Running.
type State interface {
	Mode() Mode
	Config() models.Configuration
	sealed()
}

// Configuring carries only the configuration being edited.
type Configuring struct {
	Configuration models.Configuration
}

func (Configuring) Mode() Mode                     { return ModeConfiguring }
func (c Configuring) Config() models.Configuration { return c.Configuration }
func (Configuring) sealed()                        {}

// Running carries the configuration and the timestamps of a live session.
// LastTouch and Tick never move backwards within one run.
type Running struct {
	Configuration models.Configuration
	Started       time.Time
	LastTouch     time.Time
	Tick          time.Time
}

func (Running) Mode() Mode                     { return ModeRunning }
func (r Running) Config() models.Configuration { return r.Configuration }
func (Running) sealed()                        {}

// ShouldBlankScreen reports whether more than config.BlankAfter has passed
// between the last touch and the latest tick.
func (r Running) ShouldBlankScreen() bool {
	return r.Tick.Sub(r.LastTouch) > config.BlankAfter
}

// Elapsed is the time between the start of the run and the latest tick.
func (r Running) Elapsed() time.Duration {
	if r.Tick.Before(r.Started) {
		return 0
	}
	return r.Tick.Sub(r.Started)
}

// Session is an immutable snapshot of the state machine. The zero value is a
// configuring session with the default configuration.
type Session struct {
	state State
}

func New(cfg models.Configuration) Session {
	return Session{state: Configuring{Configuration: cfg}}
}

func (s Session) State() State {
	if s.state == nil {
		return Configuring{Configuration: config.DefaultConfiguration()}
	}
	return s.state
}

func (s Session) Mode() Mode {
	return s.State().Mode()
}

func (s Session) Configuration() models.Configuration {
	return s.State().Config()
}

// Running returns the running state, if the session is running.
func (s Session) Running() (Running, bool) {
	r, ok := s.State().(Running)
	return r, ok
}

// UpdateField replaces one configuration value. The value is expected to be
// clamped by the caller. Ignored while running or for unknown fields.
func (s Session) UpdateField(f models.Field, value int) Session {
	switch st := s.State().(type) {
	case Configuring:
		if !f.Valid() {
			return s
		}
		st.Configuration = st.Configuration.With(f, value)
		return Session{state: st}
	case Running:
		return s
	default:
		unreachable(st)
		return s
	}
}

// Start enters running mode with both timestamps set to now.
func (s Session) Start(now time.Time) (Session, []Effect) {
	switch st := s.State().(type) {
	case Configuring:
		next := Running{
			Configuration: st.Configuration,
			Started:       now,
			LastTouch:     now,
			Tick:          now,
		}
		return Session{state: next}, []Effect{EffectEnterFullscreen, EffectStartTicker}
	case Running:
		return s, nil
	default:
		unreachable(st)
		return s, nil
	}
}

// Stop returns to configuring mode, keeping the configuration and dropping
// every timestamp of the run.
func (s Session) Stop() (Session, []Effect) {
	switch st := s.State().(type) {
	case Configuring:
		return s, nil
	case Running:
		return New(st.Configuration), []Effect{EffectStopTicker, EffectExitFullscreen}
	default:
		unreachable(st)
		return s, nil
	}
}

// OnPeriodicTick records the latest tick.
func (s Session) OnPeriodicTick(now time.Time) Session {
	switch st := s.State().(type) {
	case Configuring:
		return s
	case Running:
		if now.Before(st.Tick) {
			return s
		}
		st.Tick = now
		return Session{state: st}
	default:
		unreachable(st)
		return s
	}
}

// OnUserTouch records an explicit user interaction.
func (s Session) OnUserTouch(now time.Time) Session {
	switch st := s.State().(type) {
	case Configuring:
		return s
	case Running:
		if now.Before(st.LastTouch) {
			return s
		}
		st.LastTouch = now
		return Session{state: st}
	default:
		unreachable(st)
		return s
	}
}

// ShouldBlankScreen is false unless the session is running and idle.
func (s Session) ShouldBlankScreen() bool {
	switch st := s.State().(type) {
	case Configuring:
		return false
	case Running:
		return st.ShouldBlankScreen()
	default:
		unreachable(st)
		return false
	}
}

func unreachable(st State) {
	panic(fmt.Sprintf("session: unreachable state %T: %+v", st, st))
}

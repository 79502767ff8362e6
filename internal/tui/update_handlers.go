package tui

import (
	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.ProgressWidth+8 {
			target = m.width - 8
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleTick(msg tickMsg) (Model, tea.Cmd) {
	if msg.gen != m.tickGen || m.session.Mode() != session.ModeRunning {
		m.logger.Debug("dropping stale tick", "gen", msg.gen, "current", m.tickGen)
		return m, nil
	}
	wasBlank := m.session.ShouldBlankScreen()
	m.session = m.session.OnPeriodicTick(m.clock.Now())
	if blank := m.session.ShouldBlankScreen(); blank != wasBlank {
		m.logger.Debug("blank state changed", "blank", blank)
	}
	return m, tickCmd(m.tickGen)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if m.session.ShouldBlankScreen() {
		if key == "ctrl+c" {
			return m.quit()
		}
		return m.touch(), nil
	}
	next, cmd, _ := m.registry.Handle(m, key)
	return next, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.session.ShouldBlankScreen() {
		return m.touch(), nil
	}
	return m, nil
}

func (m Model) touch() Model {
	m.session = m.session.OnUserTouch(m.clock.Now())
	return m
}

func (m Model) start() (Model, tea.Cmd) {
	next, effects := m.session.Start(m.clock.Now())
	if len(effects) == 0 {
		return m, nil
	}
	m.session = next
	cfg := next.Configuration()
	m.logger.Info("session started", "run", cfg.Run, "walk", cfg.Walk, "warmup", cfg.WarmupCooldown, "count", cfg.Count)
	return m.applyEffects(effects)
}

func (m Model) stop() (Model, tea.Cmd) {
	var elapsed string
	if r, ok := m.session.Running(); ok {
		elapsed = r.Elapsed().String()
	}
	next, effects := m.session.Stop()
	if len(effects) == 0 {
		return m, nil
	}
	m.session = next
	m.logger.Info("session stopped", "elapsed", elapsed)
	return m.applyEffects(effects)
}

// quit stops a running session first so the ticker and fullscreen are
// released before the program exits.
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	next, cmd := m.stop()
	if cmd == nil {
		return next, tea.Quit
	}
	return next, tea.Sequence(cmd, tea.Quit)
}

func (m Model) step(up bool) Model {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return m
	}
	f := m.fields[m.focus]
	current := m.session.Configuration().Get(f.def.Field)
	value := f.bounds.Decrement(current)
	if up {
		value = f.bounds.Increment(current)
	}
	m.session = m.session.UpdateField(f.def.Field, value)
	return m
}

// --- Key handlers ---

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.quit()
	return next, cmd, true
}

func handleStart(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.start()
	return next, cmd, true
}

func handleStop(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.stop()
	return next, cmd, true
}

func handleFocusPrev(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus > 0 {
		m.focus--
	}
	return m, nil, true
}

func handleFocusNext(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus < len(m.fields)-1 {
		m.focus++
	}
	return m, nil, true
}

func handleIncrement(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.step(true), nil, true
}

func handleDecrement(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.step(false), nil, true
}

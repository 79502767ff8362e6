package tui

import (
	"time"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// tickMsg is delivered by the periodic ticker. gen ties it to the ticker
// that scheduled it; ticks from a stopped ticker are stale.
type tickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// applyEffects turns transition effects into commands. Starting or stopping
// the ticker bumps the generation so earlier ticks are dropped.
func (m Model) applyEffects(effects []session.Effect) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e {
		case session.EffectEnterFullscreen:
			cmds = append(cmds, m.surface.RequestFullscreen(FullscreenOptions{HideNavigationUI: true}))
		case session.EffectExitFullscreen:
			cmds = append(cmds, m.surface.ExitFullscreen())
		case session.EffectStartTicker:
			m.tickGen++
			cmds = append(cmds, tickCmd(m.tickGen))
		case session.EffectStopTicker:
			m.tickGen++
		default:
			m.logger.Warn("unhandled session effect", "effect", e.String())
		}
	}
	return m, tea.Batch(cmds...)
}

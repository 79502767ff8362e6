package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/intervals/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Modes       []session.Mode
	Priority    int
}

func (b KeyBinding) AppliesToMode(mode session.Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, m := range b.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding) Matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	mode := m.session.Mode()
	for _, b := range r.bindings {
		if b.Matches(key) && b.AppliesToMode(mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsForMode(mode session.Mode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToMode(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForMode(mode session.Mode) string {
	bindings := r.BindingsForMode(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		if seen[b.Keys[0]] {
			continue
		}
		seen[b.Keys[0]] = true
		parts = append(parts, "["+b.Keys[0]+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

// defaultRegistry binds the keys of both modes.
func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	configuring := []session.Mode{session.ModeConfiguring}
	running := []session.Mode{session.ModeRunning}

	r.Register(KeyBinding{Keys: []string{"q", "ctrl+c"}, Handler: handleQuit, Description: "Quit", Priority: 100})
	r.Register(KeyBinding{Keys: []string{"enter", "s"}, Handler: handleStart, Description: "Start", Modes: configuring, Priority: 50})
	r.Register(KeyBinding{Keys: []string{"up", "k", "shift+tab"}, Handler: handleFocusPrev, Description: "Prev", Modes: configuring, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"down", "j", "tab"}, Handler: handleFocusNext, Description: "Next", Modes: configuring, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"-", "left", "h"}, Handler: handleDecrement, Description: "Less", Modes: configuring, Priority: 30})
	r.Register(KeyBinding{Keys: []string{"+", "right", "l", "="}, Handler: handleIncrement, Description: "More", Modes: configuring, Priority: 30})
	r.Register(KeyBinding{Keys: []string{"x", "esc"}, Handler: handleStop, Description: "Stop", Modes: running, Priority: 50})
	return r
}

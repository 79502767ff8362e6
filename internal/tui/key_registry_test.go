package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/intervals/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	r.Register(KeyBinding{Keys: []string{"a"}, Priority: 1, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		calls = append(calls, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Keys: []string{"a"}, Priority: 10, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		calls = append(calls, "high")
		return m, nil, false
	}})

	_, _, handled := r.Handle(Model{}, "a")
	if !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order: %v", calls)
	}
}

func TestRegistryRespectsModes(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Keys:    []string{"x"},
		Modes:   []session.Mode{session.ModeRunning},
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m, nil, true },
	})
	if _, _, handled := r.Handle(Model{}, "x"); handled {
		t.Fatalf("running-only binding must not fire while configuring")
	}
	if _, _, handled := r.Handle(Model{}, "y"); handled {
		t.Fatalf("unbound key must not be handled")
	}
}

func TestHelpForMode(t *testing.T) {
	r := defaultRegistry()
	configuring := r.HelpForMode(session.ModeConfiguring)
	for _, want := range []string{"[q]Quit", "[enter]Start", "[+]More", "[-]Less"} {
		if !strings.Contains(configuring, want) {
			t.Fatalf("expected %q in %q", want, configuring)
		}
	}
	if strings.Contains(configuring, "Stop") {
		t.Fatalf("configuring help must not list Stop: %q", configuring)
	}

	running := r.HelpForMode(session.ModeRunning)
	if running != "[q]Quit|[x]Stop" {
		t.Fatalf("running help = %q", running)
	}
}

func TestBindingAppliesToAllModesByDefault(t *testing.T) {
	b := KeyBinding{Keys: []string{"q"}}
	if !b.AppliesToMode(session.ModeConfiguring) || !b.AppliesToMode(session.ModeRunning) {
		t.Fatalf("binding without modes should apply everywhere")
	}
	if !b.Matches("q") || b.Matches("w") {
		t.Fatalf("unexpected Matches result")
	}
}

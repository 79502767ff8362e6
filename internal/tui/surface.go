package tui

//go:generate mockgen -source=surface.go -destination=mock_surface_test.go -package=tui

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// FullscreenOptions mirrors the options of a fullscreen request.
type FullscreenOptions struct {
	// HideNavigationUI hides the cursor while fullscreen.
	HideNavigationUI bool
}

// Surface is the presentation surface a running session takes over.
// Requests are best-effort: a nil command means nothing was done.
type Surface interface {
	RequestFullscreen(opts FullscreenOptions) tea.Cmd
	ExitFullscreen() tea.Cmd
}

// TerminalSurface presents fullscreen as the terminal's alternate screen.
type TerminalSurface struct {
	fd int
}

func NewTerminalSurface(f *os.File) *TerminalSurface {
	return &TerminalSurface{fd: int(f.Fd())}
}

// Available reports whether the output is a terminal that can switch
// screens.
func (s *TerminalSurface) Available() bool {
	return term.IsTerminal(s.fd)
}

func (s *TerminalSurface) RequestFullscreen(opts FullscreenOptions) tea.Cmd {
	if !s.Available() {
		slog.Debug("fullscreen request skipped", "reason", "not a terminal", "fd", s.fd)
		return nil
	}
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if opts.HideNavigationUI {
		cmds = append(cmds, tea.HideCursor)
	}
	return tea.Batch(cmds...)
}

func (s *TerminalSurface) ExitFullscreen() tea.Cmd {
	if !s.Available() {
		return nil
	}
	return tea.Batch(tea.ExitAltScreen, tea.ShowCursor)
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/plan"
	"github.com/akyairhashvil/intervals/internal/session"
	"github.com/akyairhashvil/intervals/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch st := m.session.State().(type) {
	case session.Configuring:
		return m.renderConfiguring(st)
	case session.Running:
		if st.ShouldBlankScreen() {
			return m.renderBlank()
		}
		return m.renderRunning(st)
	default:
		panic(fmt.Sprintf("tui: unreachable session state %T", st))
	}
}

func (m Model) formWidth() int {
	w := config.FormWidth
	if m.width > 0 && m.width-4 < w {
		w = m.width - 4
	}
	if w < config.MinFormWidth {
		w = config.MinFormWidth
	}
	return w
}

// padRight pads s with spaces to width cells, truncating when too long.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, config.TruncationSuffix)
	}
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func (m Model) renderHeader() string {
	title := m.theme.Header.Render("Intervals")
	version := m.theme.Dim.Render("v" + AppVersion)
	return title + " " + version
}

func (m Model) renderField(i int, f fieldInput, value int, width int) string {
	compact := m.width > 0 && m.width < config.CompactModeThreshold

	cursor := "  "
	label := m.theme.Label.Render(f.def.Label)
	if i == m.focus {
		cursor = m.theme.Focused.Render("> ")
		label = m.theme.Focused.Render(f.def.Label)
	}
	text := fmt.Sprintf("%s%s: %s", cursor, label, m.theme.Value.Render(strconv.Itoa(value)))
	if !compact {
		text += " " + f.def.Unit
	}

	dec := m.theme.Decrease.Render("-")
	if f.bounds.AtMin(value) {
		dec = m.theme.Dim.Render(" - ")
	}
	inc := m.theme.Increase.Render("+")
	if f.bounds.AtMax(value) {
		inc = m.theme.Dim.Render(" + ")
	}
	buttons := dec + " " + inc
	return padRight(text, width-ansi.StringWidth(buttons)-1) + " " + buttons
}

func (m Model) renderConfiguring(st session.Configuring) string {
	width := m.formWidth()
	lines := []string{m.renderHeader(), ""}
	for i, f := range m.fields {
		lines = append(lines, m.renderField(i, f, st.Configuration.Get(f.def.Field), width))
	}

	p := plan.Build(st.Configuration)
	summary := fmt.Sprintf("%d segments, %s total", len(p.Segments), util.MinutesLabel(int(p.Total().Minutes())))
	lines = append(lines,
		"",
		m.theme.Dim.Render(padRight(summary, width)),
		"",
		m.theme.Start.Render("Start"),
		"",
		m.theme.Dim.Render(padRight(m.registry.HelpForMode(session.ModeConfiguring), width)),
	)
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) kindStyle(k plan.Kind) lipgloss.Style {
	switch k {
	case plan.KindRun:
		return m.theme.Run
	case plan.KindWalk:
		return m.theme.Walk
	default:
		return m.theme.Warmup
	}
}

func (m Model) renderSegment(r session.Running) string {
	p := m.currentPlan()
	pos := p.At(r.Elapsed())
	if pos.Finished {
		return m.theme.Highlight.Render("Done. Nice work!")
	}
	label := m.kindStyle(pos.Segment.Kind).Render(FormatSegment(pos.Segment, r.Configuration.Count))
	return fmt.Sprintf("%s  %s left", label, FormatTimeRemaining(pos.Remaining))
}

func (m Model) renderRunning(r session.Running) string {
	p := m.currentPlan()
	elapsed := r.Elapsed()
	bar := fmt.Sprintf("%s  %s / %s", m.progress.ViewAs(p.Progress(elapsed)), formatDuration(elapsed), formatDuration(p.Total()))

	lines := []string{
		m.renderHeader(),
		"",
		"Running...",
		m.renderSegment(r),
		bar,
		"",
		"Last touch: " + FormatTimestamp(r.LastTouch),
		"Tick: " + FormatTimestamp(r.Tick),
		fmt.Sprintf("Blank? %t", r.ShouldBlankScreen()),
		"",
		m.theme.Stop.Render("Stop"),
		"",
		m.theme.Dim.Render(m.registry.HelpForMode(session.ModeRunning)),
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderBlank paints the whole window; any key or click wakes it.
func (m Model) renderBlank() string {
	w, h := m.width, m.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return m.theme.Blank.Width(w).Height(h).Render("")
}

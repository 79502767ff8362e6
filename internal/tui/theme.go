package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Focused   lipgloss.Style
	Decrease  lipgloss.Style
	Increase  lipgloss.Style
	Start     lipgloss.Style
	Stop      lipgloss.Style
	Warmup    lipgloss.Style
	Run       lipgloss.Style
	Walk      lipgloss.Style
	Dim       lipgloss.Style
	Blank     lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Decrease:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("88")).Bold(true).Padding(0, 1),
		Increase:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22")).Bold(true).Padding(0, 1),
		Start:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22")).Padding(0, 2),
		Stop:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("18")).Padding(0, 2),
		Warmup:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Run:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Walk:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Blank:     lipgloss.NewStyle().Background(lipgloss.Color("0")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Decrease:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("203")).Bold(true).Padding(0, 1),
		Increase:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("120")).Bold(true).Padding(0, 1),
		Start:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("120")).Padding(0, 2),
		Stop:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("141")).Padding(0, 2),
		Warmup:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Run:       lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		Walk:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Blank:     lipgloss.NewStyle().Background(lipgloss.Color("16")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

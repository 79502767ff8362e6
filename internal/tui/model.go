package tui

import (
	"fmt"
	"log/slog"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/models"
	"github.com/akyairhashvil/intervals/internal/plan"
	"github.com/akyairhashvil/intervals/internal/session"
	"github.com/akyairhashvil/intervals/internal/stepper"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// fieldInput pairs a field's definition with its stepper bounds.
type fieldInput struct {
	def    models.FieldSpec
	bounds stepper.Bounds
}

type Options struct {
	Configuration models.Configuration
	Theme         string
	Clock         clockwork.Clock
	Surface       Surface
	Logger        *slog.Logger
	Width         int
	Height        int
}

// Model is the root bubbletea model. It owns the session and acts as the
// runtime that carries out the session's effects.
type Model struct {
	session  session.Session
	fields   []fieldInput
	focus    int
	tickGen  int
	clock    clockwork.Clock
	surface  Surface
	logger   *slog.Logger
	theme    Theme
	registry *HandlerRegistry
	progress progress.Model
	width    int
	height   int
	quitting bool
}

func NewModel(opts Options) (Model, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Surface == nil {
		return Model{}, fmt.Errorf("new model: surface is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var fields []fieldInput
	for _, def := range config.FieldSpecs() {
		bounds, err := stepper.New(def.Min, def.Max)
		if err != nil {
			return Model{}, fmt.Errorf("field %s: %w", def.Field, err)
		}
		fields = append(fields, fieldInput{def: def, bounds: bounds})
	}

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = config.ProgressWidth

	m := Model{
		session:  session.New(opts.Configuration),
		fields:   fields,
		clock:    opts.Clock,
		surface:  opts.Surface,
		logger:   opts.Logger,
		theme:    ThemeByName(opts.Theme),
		registry: defaultRegistry(),
		progress: prog,
	}
	m, _ = m.handleWindowSize(tea.WindowSizeMsg{Width: opts.Width, Height: opts.Height})
	return m, nil
}

// Init releases any fullscreen presentation: a configuring session is
// never fullscreen.
func (m Model) Init() tea.Cmd {
	return m.surface.ExitFullscreen()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) currentPlan() plan.Plan {
	return plan.Build(m.session.Configuration())
}

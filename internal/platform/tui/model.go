package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// footerHeight is the number of terminal rows reserved below the game
// for the help view (separator line included).
const footerHeight = 3

// Game is the contract between the platform and a game.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping and rendering.
type Game interface {
	// ID returns a unique identifier used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset lays the game out for the screen and starts a new match.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to new screen dimensions without changing game state.
	Resize(width, height int)

	// Step applies one frame of input and reports what happened.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Model is the Bubble Tea model for one game session.
// Every key, click or resize event is handled to completion before the next.
type Model struct {
	game      Game
	screen    *core.Screen
	painter   *Painter
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger receiving game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPainter sets the painter used to style the screen.
func WithPainter(p *Painter) Option {
	return func(m *Model) {
		if p != nil {
			m.painter = p
		}
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg is the full terminal size; rows for the footer are taken from it.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.painter == nil {
		m.painter = NewPainter(nil)
	}

	m.config = gameArea(cfg.ScreenW, cfg.ScreenH)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW
	m.logger = m.logger.With("game", game.ID())

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// gameArea returns the screen left for the game once the footer is reserved.
func gameArea(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: max(width, 0),
		ScreenH: max(height-footerHeight, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "title", m.game.Title())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &in) {
		m.quitting = true
		m.logger.Info("session ended", "status", m.gameState.Status)
		return m, tea.Quit
	}
	if in.Empty() {
		return m, nil
	}

	return m.step(in), nil
}

// handleMouse forwards left clicks to the game as pointer presses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	in := core.NewInputFrame()
	in.SetClick(msg.X, msg.Y)
	return m.step(in), nil
}

// handleResize processes window resize events.
// The match and the tally are preserved.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config = gameArea(msg.Width, msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// step runs one input frame through the game and logs its events.
func (m Model) step(in core.InputFrame) Model {
	result := m.game.Step(in)
	m.gameState = result.State

	for _, e := range result.Events {
		if e.Detail {
			m.logger.Debug(e.Msg, e.KeyVals...)
		} else {
			m.logger.Info(e.Msg, e.KeyVals...)
		}
	}
	return m
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.RenderScreen(m.screen) + "\n" + m.painter.RenderFooter(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game on the local terminal.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on cells place marks
	)

	_, err := p.Run()
	return err
}

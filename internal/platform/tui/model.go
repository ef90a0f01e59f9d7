package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// journaled is implemented by games that record a replayable journal.
type journaled interface {
	Journal() tetris.Journal
}

// Model is the Bubble Tea model hosting one game.
// Key presses are forwarded to the game immediately; gravity steps arrive
// from the model's own timer.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	saver   tetris.JournalSaver
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	gravity gravity

	state      core.GameState
	saved      bool  // Journal saved for the current game over
	replayID   int64 // ID of the last saved journal
	quitting   bool
	backToMenu bool
}

// Option configures a Model.
type Option func(*Model)

// WithSaver stores the journal of every finished game.
func WithSaver(s tetris.JournalSaver) Option {
	return func(m *Model) {
		m.saver = s
	}
}

// WithLogger sets the logger used for best-effort side effects.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithBackToMenu enables the key that leaves a paused or finished game.
func WithBackToMenu() Option {
	return func(m *Model) {
		m.keys.Back.SetEnabled(true)
	}
}

// NewModel creates a model for game and starts a new game on it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Gravity <= 0 {
		cfg.Gravity = core.DefaultGravity
	}

	m := Model{
		game:    game,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		gravity: newGravity(cfg.Gravity),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}

	w, h := cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)
	m.screen = core.NewScreen(w, h)
	m.help.Width = w

	gameCfg := cfg
	gameCfg.ScreenH = h
	game.Reset(gameCfg)
	m.observe(game.State())
	return m
}

// Init starts the gravity timer.
func (m Model) Init() tea.Cmd {
	if !m.gravity.armed {
		return nil
	}
	return m.gravity.schedule()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case GravityMsg:
		return m.handleGravity(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		m.gravity.disarm()
		return m, tea.Quit

	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			m.gravity.disarm()
		}
		return m, nil

	case core.ActionRestart:
		// A restart always starts a fresh timer chain.
		m.gravity.disarm()
		m.saved = false
	}

	res := m.game.Handle(action)
	return m, m.observe(res.State)
}

// handleResize processes window resize events without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-helpHeight, 0)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	m.game.Resize(msg.Width, h)
	return m, m.observe(m.game.State())
}

// handleGravity applies one gravity step if the fire belongs to the live chain.
func (m Model) handleGravity(msg GravityMsg) (tea.Model, tea.Cmd) {
	if !m.gravity.accept(msg) {
		return m, nil
	}

	res := m.game.Step()
	m.observe(res.State)
	if !m.gravity.armed {
		return m, nil
	}
	return m, m.gravity.schedule()
}

// observe records the game state after a command and keeps the gravity
// timer armed exactly while the game is running.
func (m *Model) observe(state core.GameState) tea.Cmd {
	m.state = state

	if state.GameOver && !m.saved {
		m.saved = true
		m.saveJournal()
	}

	switch {
	case state.Running() && !m.gravity.armed:
		return m.gravity.arm()
	case !state.Running() && m.gravity.armed:
		m.gravity.disarm()
	}
	return nil
}

// saveJournal stores the finished game. Failures are logged, not fatal.
func (m *Model) saveJournal() {
	j, ok := m.game.(journaled)
	if !ok || m.saver == nil {
		return
	}

	journal := j.Journal()
	id, err := m.saver.SaveJournal(journal)
	if err != nil {
		m.logger.Warn("could not save replay", "game", m.game.ID(), "error", err)
		return
	}
	m.replayID = id
	m.logger.Info("replay saved",
		"id", id,
		"game", m.game.ID(),
		"score", m.state.Score,
		"commands", len(journal.Commands),
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// ReplayID returns the ID of the last saved journal, or 0.
func (m Model) ReplayID() int64 {
	return m.replayID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result summarizes a finished Run.
type Result struct {
	State    core.GameState
	ReplayID int64
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) (Result, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.State(), ReplayID: m.ReplayID()}, nil
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memoriku/internal/core"
)

// GameModel is the Bubble Tea model that drives a single game.
// It owns the screen buffer, collects one input frame per tick and
// renders the help line below the board.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	exitOnBack bool // standalone program quits instead of returning to a parent
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
// A nil renderer uses the default lipgloss renderer.
func NewGameModel(game core.Game, cfg core.RuntimeConfig, renderer *ScreenRenderer) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		renderer:   renderer,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
	w, bh := m.boardSize()
	m.screen = core.NewScreen(w, bh)
	return m
}

// boardSize is the screen area left for the game once the help is drawn.
func (m GameModel) boardSize() (int, int) {
	h := m.config.ScreenH - m.helpHeight()
	if h < 1 {
		h = 1
	}
	return m.config.ScreenW, h
}

func (m GameModel) helpHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

func (m GameModel) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW, cfg.ScreenH = m.boardSize()
	return cfg
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.boardConfig())
	// gameState is refreshed on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeBoard()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// resizeBoard keeps the game's progress and only relays out the board.
func (m *GameModel) resizeBoard() {
	w, h := m.boardSize()
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeBoard()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Only leave a level that is not being played
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse turns a left click into a click on the board.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.inputFrame.SetClick(msg.X, msg.Y)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// New deal for the new campaign
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.boardConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := m.renderer.Lipgloss().NewStyle().Foreground(lipgloss.Color("241"))
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame runs a game as a standalone program until the player quits or
// asks for the level menu. The returned flag reports the latter.
func RunGame(game core.Game, cfg core.RuntimeConfig) (bool, error) {
	model := NewGameModel(game, cfg, nil)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(GameModel); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memoriku/internal/core"
	"github.com/vovakirdan/memoriku/internal/games/memory"
)

// Level menu layout constants
const (
	menuChromeHeight = 8 // title, subtitle, help and margins
	minTableHeight   = 3
)

// LevelMenuModel is the Bubble Tea model for the level picker.
type LevelMenuModel struct {
	levels   []memory.Level
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	lg       *lipgloss.Renderer
	config   core.RuntimeConfig
	selected int // 1-indexed; 0 while nothing is chosen
	quitting bool
}

// NewLevelMenuModel creates a level picker for the given settings.
// A nil renderer uses the default lipgloss renderer.
func NewLevelMenuModel(settings memory.Settings, cfg core.RuntimeConfig, lg *lipgloss.Renderer) LevelMenuModel {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := LevelMenuModel{
		levels: settings.Levels,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		lg:     lg,
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the level table sized to the current screen.
func (m *LevelMenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 16},
		{Title: "Grid", Width: 6},
		{Title: "Pairs", Width: 6},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols),
			fmt.Sprintf("%d", lvl.Pairs),
		}
	}

	// Header plus one line per level, never below the minimum
	height := core.Clamp(m.config.ScreenH-menuChromeHeight, minTableHeight, max(len(rows)+1, minTableHeight))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.table.Cursor() + 1
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := m.lg.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	subtitleStyle := m.lg.NewStyle().
		Foreground(lipgloss.Color("245"))
	tableStyle := m.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := m.lg.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("M E M O R I K U", m.config.ScreenW)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(centerText("Choose a level to start from", m.config.ScreenW)))
	b.WriteString("\n\n")

	tbl := tableStyle.Render(m.table.View())
	b.WriteString(lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, tbl))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen 1-indexed level, or 0 if none yet.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if the user asked to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config updated by resizes.
func (m LevelMenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := core.TextWidth(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the level menu.
type MenuResult struct {
	Level  int // 1-indexed
	Config core.RuntimeConfig
	Quit   bool
}

// selectingMenu quits the standalone program once a level is chosen.
type selectingMenu struct {
	LevelMenuModel
}

func (s selectingMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.LevelMenuModel.Update(msg)
	if lm, ok := next.(LevelMenuModel); ok {
		s.LevelMenuModel = lm
	}
	if s.selected > 0 {
		return s, tea.Quit
	}
	return s, cmd
}

// RunLevelMenu shows the level picker and returns the player's choice.
func RunLevelMenu(settings memory.Settings, cfg core.RuntimeConfig) (MenuResult, error) {
	model := selectingMenu{NewLevelMenuModel(settings, cfg, nil)}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	fm, ok := final.(selectingMenu)
	if !ok || fm.selected == 0 {
		return MenuResult{Quit: true, Config: cfg}, nil
	}
	return MenuResult{Level: fm.selected, Config: fm.config}, nil
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/memoriku/internal/core"
	"github.com/vovakirdan/memoriku/internal/games/memory"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42}
}

func newTestGameModel(t *testing.T) (GameModel, *memory.Game) {
	t.Helper()
	game, err := memory.NewGame(memory.DefaultSettings())
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	m := NewGameModel(game, testConfig(), newTestRenderer(termenv.Ascii))
	m.Init()
	return m, game
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = update(t, m, TickMsg{})
	return m
}

// cardCell finds a screen cell inside the card at pos.
func cardCell(t *testing.T, game *memory.Game, w, h, pos int) (int, int) {
	t.Helper()
	for y := range h {
		for x := range w {
			if p, ok := game.CardAt(x, y); ok && p == pos {
				return x, y
			}
		}
	}
	t.Fatalf("card %d not on screen", pos)
	return 0, 0
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestGameModelLeftClickFlipsCard(t *testing.T) {
	m, game := newTestGameModel(t)
	x, y := cardCell(t, game, m.screen.Width(), m.screen.Height(), 0)

	m, _ = update(t, m, leftClick(x, y))
	m = tick(t, m)

	card, _ := game.Engine().Card(0)
	if !card.Flipped {
		t.Error("left click should flip the card under the pointer")
	}
	if m.inputFrame.Clicked {
		t.Error("click should be cleared after the tick")
	}
}

func TestGameModelIgnoresOtherMouseEvents(t *testing.T) {
	m, game := newTestGameModel(t)
	x, y := cardCell(t, game, m.screen.Width(), m.screen.Height(), 0)

	events := []tea.MouseMsg{
		{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
	}
	for _, ev := range events {
		m, _ = update(t, m, ev)
	}
	tick(t, m)

	if card, _ := game.Engine().Card(0); card.Flipped {
		t.Error("only a left press should flip a card")
	}
}

func TestGameModelSpaceFlipsCursorCard(t *testing.T) {
	m, game := newTestGameModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	tick(t, m)

	if card, _ := game.Engine().Card(game.Cursor()); !card.Flipped {
		t.Error("space should flip the card under the cursor")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestGameModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelBackOnlyWhenNotPlaying(t *testing.T) {
	m, _ := newTestGameModel(t)
	m = tick(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back must be ignored during play")
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("expected paused state after p")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program on back")
	}
}

func TestGameModelBackQuitsStandalone(t *testing.T) {
	m, _ := newTestGameModel(t)
	m.exitOnBack = true
	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)

	_, cmd := update(t, m, runeKey('b'))
	if cmd == nil {
		t.Error("standalone model should quit on back")
	}
}

// clearLevel matches every pair of the current level through the engine.
func clearLevel(game *memory.Game) {
	eng := game.Engine()
	seen := map[memory.Symbol]int{}
	for _, c := range eng.Cards() {
		if first, ok := seen[c.Symbol]; ok {
			eng.SubmitClick(first)
			eng.SubmitClick(c.Pos)
			continue
		}
		seen[c.Symbol] = c.Pos
	}
}

func TestGameModelRestartAfterGameComplete(t *testing.T) {
	game, err := memory.NewGame(memory.DefaultSettings())
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if err := game.SetStartLevel(3); err != nil {
		t.Fatalf("SetStartLevel() error = %v", err)
	}
	m := NewGameModel(game, testConfig(), newTestRenderer(termenv.Ascii))
	m.Init()

	// Restart is ignored while playing
	m, _ = update(t, m, runeKey('r'))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Fatal("restart must be ignored before the game is complete")
	}

	clearLevel(game)
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatalf("phase = %v, want game complete", game.Engine().Phase())
	}

	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m)

	if m.State().GameOver {
		t.Error("restart should leave the game complete screen")
	}
	if got := game.Engine().State().LevelIndex; got != 0 {
		t.Errorf("restart level index = %d, want 0", got)
	}
	if got := game.Engine().State().TotalMoves; got != 0 {
		t.Errorf("restart total moves = %d, want 0", got)
	}
}

func TestGameModelResizeKeepsProgress(t *testing.T) {
	m, game := newTestGameModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if card, _ := game.Engine().Card(0); !card.Flipped {
		t.Error("resize should keep flipped cards")
	}
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
	if m.screen.Height() >= 40 {
		t.Errorf("screen height = %d, want room for help below", m.screen.Height())
	}
}

func TestGameModelFullHelpShrinksBoard(t *testing.T) {
	m, _ := newTestGameModel(t)
	before := m.screen.Height()

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should toggle the full help")
	}
	if m.screen.Height() >= before {
		t.Errorf("board height = %d, want less than %d with full help", m.screen.Height(), before)
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != before {
		t.Errorf("board height = %d, want %d after closing help", m.screen.Height(), before)
	}
}

func TestGameModelViewShowsBoardAndHelp(t *testing.T) {
	m, _ := newTestGameModel(t)
	m = tick(t, m)

	view := m.View()
	for _, want := range []string{"M E M O R I K U", "Solar System", "flip", "quit"} {
		if !containsText(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/memoriku/internal/core"
)

// Board layout, in cells.
const (
	cardWidth  = 7
	cardHeight = 3
	cardGapX   = 1
	cardGapY   = 0
	hudHeight  = 3
)

// Game adapts the Engine to the platform: it keeps a cursor, maps input
// frames to clicks, and acts as the Engine's View so that level banners
// and the move counter are drawn from what the Engine reported.
type Game struct {
	settings   Settings
	engine     *Engine
	startLevel int // 1-indexed level for the next Reset, 0 for the first

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	cursor int
	level  Level
	layout []core.Rect // Card rectangles, indexed by position
	moves  int
	banner []string // Level/game complete message, nil while playing
	next   string   // Name of the next level while a level-complete banner is up
}

var _ core.Game = (*Game)(nil)
var _ View = (*Game)(nil)

// NewGame creates a game over validated settings.
func NewGame(settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Game{settings: settings}, nil
}

// SetStartLevel makes the next Reset begin at the given 1-indexed level.
// 0 means start from the beginning. The choice is consumed by Reset, so a
// restart after the campaign is complete begins at level 1 again.
func (g *Game) SetStartLevel(level int) error {
	if level < 0 || level > len(g.settings.Levels) {
		return fmt.Errorf("level %d out of range 1..%d", level, len(g.settings.Levels))
	}
	g.startLevel = level
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memoriku"
}

// Reset deals a fresh campaign.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.banner = nil

	// Settings were validated by NewGame, so this cannot fail
	engine, err := NewEngine(g.settings, cfg.TickRate, rand.New(rand.NewSource(cfg.Seed)), g)
	if err != nil {
		panic(fmt.Sprintf("memory: validated settings rejected: %v", err))
	}
	g.engine = engine

	if g.startLevel > 0 {
		//nolint:errcheck // Range checked by SetStartLevel
		g.engine.StartAt(g.startLevel - 1)
		g.startLevel = 0
	}
}

// Resize relays out the board for the new screen size.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.relayout()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	phase := g.engine.Phase()

	if in.Has(core.ActionPause) && phase != PhaseGameComplete {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Advance the clock before applying input so a flip-back scheduled this
	// frame stays visible for its full delay.
	g.engine.Tick()
	phase = g.engine.Phase()

	switch phase {
	case PhaseLevelComplete:
		if in.Has(core.ActionNext) || in.Has(core.ActionFlip) || in.Clicked {
			g.engine.NextLevel()
		}
	case PhaseGameComplete:
		// Waiting for the platform to restart
	default:
		g.moveCursor(in)
		if in.Clicked {
			if pos, ok := g.CardAt(in.Click.X, in.Click.Y); ok {
				g.cursor = pos
				g.engine.SubmitClick(pos)
			}
		}
		if in.Has(core.ActionFlip) {
			g.engine.SubmitClick(g.cursor)
		}
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor one card, wrapping at the grid edges.
func (g *Game) moveCursor(in core.InputFrame) {
	cols, rows := g.level.Cols, g.level.Rows
	if cols == 0 || rows == 0 {
		return
	}
	row, col := g.cursor/cols, g.cursor%cols

	switch {
	case in.Has(core.ActionLeft):
		col = core.Wrap(col-1, cols)
	case in.Has(core.ActionRight):
		col = core.Wrap(col+1, cols)
	case in.Has(core.ActionUp):
		row = core.Wrap(row-1, rows)
	case in.Has(core.ActionDown):
		row = core.Wrap(row+1, rows)
	}
	g.cursor = row*cols + col
}

// CardAt maps a screen cell to the board position of the card drawn there.
func (g *Game) CardAt(x, y int) (int, bool) {
	for pos, r := range g.layout {
		if r.Contains(x, y) {
			return pos, true
		}
	}
	return 0, false
}

// Cursor returns the board position under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Engine exposes the underlying state machine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	phase := g.engine.Phase()
	return core.GameState{
		Level:    g.engine.state.LevelIndex + 1,
		Moves:    g.moves,
		GameOver: phase == PhaseGameComplete,
		Paused:   g.paused || g.tooSmall || phase == PhaseLevelComplete,
	}
}

// RenderBoard implements View.
func (g *Game) RenderBoard(level Level, cards []Card) {
	g.level = level
	g.cursor = 0
	g.banner = nil
	g.next = ""
	g.layout = make([]core.Rect, len(cards))
	g.relayout()
}

// UpdateMoveCount implements View.
func (g *Game) UpdateMoveCount(moves int) {
	g.moves = moves
}

// ShowLevelComplete implements View.
func (g *Game) ShowLevelComplete(message string, hasNextLevel bool, nextLevelName string) {
	g.banner = []string{"LEVEL COMPLETE!", message}
	if hasNextLevel {
		g.next = nextLevelName
	}
}

// ShowGameComplete implements View.
func (g *Game) ShowGameComplete(message string) {
	g.banner = []string{"CAMPAIGN COMPLETE!", message}
	g.next = ""
}

// relayout positions the cards centered under the HUD and flags screens
// too small to hold the board.
func (g *Game) relayout() {
	cols, rows := g.level.Cols, g.level.Rows
	boardW := cols*cardWidth + (cols-1)*cardGapX
	boardH := rows*cardHeight + (rows-1)*cardGapY

	g.tooSmall = g.screenW < boardW+2 || g.screenH < hudHeight+boardH+1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	for pos := range g.layout {
		row, col := pos/cols, pos%cols
		g.layout[pos] = core.NewRect(
			boardX+col*(cardWidth+cardGapX),
			boardY+row*(cardHeight+cardGapY),
			cardWidth,
			cardHeight,
		)
	}
}

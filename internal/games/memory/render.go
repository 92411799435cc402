package memory

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/memoriku/internal/core"
)

// Visual characters and colors for the board.
const (
	cardBackGlyph = '?'

	colorCardBack    = core.ColorGray
	colorCardFace    = core.ColorWhite
	colorCardMatched = core.ColorGreen
	colorCursor      = core.ColorBrightYellow
	colorTitle       = core.ColorBrightCyan
	colorBanner      = core.ColorBrightGreen
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	need := fmt.Sprintf("%s needs %dx%d", g.level.Name,
		g.level.Cols*(cardWidth+cardGapX)+1, hudHeight+g.level.Rows*(cardHeight+cardGapY)+1)
	dst.DrawTextCentered(y, need)
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, level and counters above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, "M E M O R I K U", colorTitle)

	left := fmt.Sprintf("Level %d/%d: %s", g.level.ID, g.engine.LevelCount(), g.level.Name)
	right := fmt.Sprintf("Moves: %d  Pairs: %d/%d", g.moves, g.engine.state.MatchedPairs, g.level.Pairs)

	boardX, boardW := g.boardSpan()
	dst.DrawText(boardX, 1, left)
	rightX := max(boardX+boardW-core.TextWidth(right), boardX+core.TextWidth(left)+2)
	dst.DrawText(rightX, 1, right)
}

// boardSpan returns the x position and width of the card grid.
func (g *Game) boardSpan() (int, int) {
	if len(g.layout) == 0 {
		return 0, g.screenW
	}
	first := g.layout[0]
	last := g.layout[len(g.layout)-1]
	return first.X, last.Right() - first.X
}

// renderBoard draws every card in its layout rectangle.
func (g *Game) renderBoard(dst *core.Screen) {
	catalog := g.engine.Catalog()

	for pos, r := range g.layout {
		card, ok := g.engine.Card(pos)
		if !ok {
			continue
		}

		glyph, glyphColor := cardBackGlyph, colorCardBack
		border := colorCardBack
		if card.Flipped || card.Matched {
			border = colorCardFace
			if icon, found := catalog.Lookup(card.Symbol); found {
				glyph, glyphColor = icon.Glyph, icon.Color
			}
		}
		if card.Matched {
			border = colorCardMatched
		}

		if pos == g.cursor && g.banner == nil {
			dst.DrawDoubleBox(r, colorCursor)
		} else {
			dst.DrawBoxColor(r, border)
		}

		cx, cy := r.Center()
		dst.SetCell(cx, cy, core.Cell{Rune: glyph, Color: glyphColor, Bold: card.Matched})
	}
}

// renderOverlays draws pause and level/campaign banners over the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	if g.paused {
		g.drawOverlay(dst, colorTitle, "PAUSED", "Press P to resume")
		return
	}
	if g.banner == nil {
		return
	}

	width := max(g.screenW-8, 20)
	lines := []string{g.banner[0]}
	for _, msg := range g.banner[1:] {
		lines = append(lines, wrapText(msg, width)...)
	}
	lines = append(lines, "")
	if g.next != "" {
		lines = append(lines, fmt.Sprintf("Press N to continue to %s", g.next))
	} else {
		lines = append(lines, "Press R to play again")
	}
	g.drawOverlay(dst, colorBanner, lines...)
}

// drawOverlay draws a boxed block of centered lines in the middle of the screen.
func (g *Game) drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, core.TextWidth(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((g.screenW-boxW)/2, (g.screenH-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, c)
	for i, line := range lines {
		x := box.X + (boxW-core.TextWidth(line))/2
		lineColor := core.ColorDefault
		if i == 0 {
			lineColor = c
		}
		dst.DrawTextColor(x, box.Y+1+i, line, lineColor)
	}
}

// wrapText breaks text into lines of at most width runes on word boundaries.
func wrapText(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && core.TextWidth(line.String())+1+core.TextWidth(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

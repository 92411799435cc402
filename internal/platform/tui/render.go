package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memoriku/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// cellStyle is the styling part of a cell, used to group runs.
type cellStyle struct {
	color core.Color
	bold  bool
}

// ScreenRenderer turns a Screen into styled terminal output.
// Each SSH session gets its own renderer so colors follow the client's
// terminal rather than the server's.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer; nil means the default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

// Lipgloss returns the underlying lipgloss renderer.
func (sr *ScreenRenderer) Lipgloss() *lipgloss.Renderer {
	return sr.renderer
}

func (sr *ScreenRenderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := sr.styles[cs]; ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if c, ok := palette[cs.color]; ok {
		st = st.Foreground(c)
	}
	if cs.bold {
		st = st.Bold(true)
	}
	sr.styles[cs] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped to keep escape sequences short.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			cs := cellStyle{color: first.Color, bold: first.Bold}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cellStyle{color: cell.Color, bold: cell.Bold}) != cs {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if cs == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(cs).Render(run.String()))
		}
	}
	return sb.String()
}

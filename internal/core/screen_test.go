package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      " {
		t.Errorf("String() = %q, expected two blank rows", got)
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, Cell{Rune: '★', Color: ColorBrightYellow, Bold: true})

	if got := s.GetCell(1, 2); got.Rune != '★' || got.Color != ColorBrightYellow || !got.Bold {
		t.Errorf("GetCell(1, 2) = %+v", got)
	}

	// Out of bounds writes are ignored, reads are blank
	s.SetCell(-1, 0, Cell{Rune: 'x'})
	s.SetCell(4, 4, Cell{Rune: 'x'})
	if got := s.GetCell(10, 10); got != blankCell {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		color Color
		want  string
	}{
		{"plain", 0, "Moves", ColorDefault, "Moves   "},
		{"colored", 2, "ab", ColorCyan, "  ab    "},
		{"clipped right", 6, "Hello", ColorRed, "      He"},
		{"clipped left", -2, "Hello", ColorDefault, "llo     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawTextColor(tt.x, 0, tt.text, tt.color)
			if got := s.String(); got != tt.want {
				t.Errorf("row = %q, expected %q", got, tt.want)
			}
			if tt.x >= 0 && s.GetCell(tt.x, 0).Color != tt.color {
				t.Errorf("color = %v, expected %v", s.GetCell(tt.x, 0).Color, tt.color)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCenteredColor(0, "★★", ColorYellow)

	// Two runes wide, so the text starts at column 4
	if s.GetCell(4, 0).Rune != '★' || s.GetCell(5, 0).Rune != '★' {
		t.Errorf("centered text misplaced: %q", s.String())
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "XXXXX")
	s.DrawRect(NewRect(1, 0, 3, 3), ' ')

	if got := s.String(); got != "     \nX   X\n     " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenBoxes(t *testing.T) {
	tests := []struct {
		name                   string
		draw                   func(s *Screen, r Rect)
		tl, tr, bl, br, hz, vt rune
	}{
		{"single", func(s *Screen, r Rect) { s.DrawBoxColor(r, ColorGreen) }, '┌', '┐', '└', '┘', '─', '│'},
		{"double", func(s *Screen, r Rect) { s.DrawDoubleBox(r, ColorGreen) }, '╔', '╗', '╚', '╝', '═', '║'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 5)
			r := NewRect(1, 1, 5, 3)
			tt.draw(s, r)

			checks := []struct {
				x, y int
				want rune
			}{
				{1, 1, tt.tl}, {5, 1, tt.tr}, {1, 3, tt.bl}, {5, 3, tt.br},
				{3, 1, tt.hz}, {3, 3, tt.hz}, {1, 2, tt.vt}, {5, 2, tt.vt},
				{3, 2, ' '}, // interior untouched
			}
			for _, c := range checks {
				if got := s.GetCell(c.x, c.y).Rune; got != c.want {
					t.Errorf("(%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
				}
			}
			if s.GetCell(1, 1).Color != ColorGreen {
				t.Error("box edges should be colored")
			}
		})
	}
}

func TestScreenBoxTooSmall(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBoxColor(NewRect(1, 1, 1, 1), ColorDefault)

	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("a 1x1 box should not be drawn")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 2, "World")

	s.Resize(4, 2)
	if got := s.String(); got != "Hell\n    " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(6, 3)
	if got := s.String(); got != "Hell  \n      \n      " {
		t.Errorf("after grow String() = %q", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColor(0, 0, "abc", ColorRed)
	s.Clear()

	if got := s.GetCell(0, 0); got != blankCell {
		t.Errorf("after Clear cell = %+v, expected blank", got)
	}
}

func TestTextWidth(t *testing.T) {
	if TextWidth("abc") != 3 {
		t.Error("TextWidth(\"abc\") should be 3")
	}
	if TextWidth("★☾") != 2 {
		t.Error("TextWidth should count runes, not bytes")
	}
}

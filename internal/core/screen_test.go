package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	if got, want := s.String(), strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 12)+"\n", 4), "\n"); got != want {
		t.Errorf("new screen = %q, expected blanks", got)
	}

	if z := NewScreen(-3, -1); z.Width() != 0 || z.Height() != 0 || z.String() != "" {
		t.Error("negative sizes should clamp to an empty screen")
	}
}

func TestScreenCellsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'x', ColorCyan)

	if c := s.GetCell(1, 1); c.Rune != 'x' || c.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v", c)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], '#')
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if strings.Contains(s.String(), "#") {
		t.Error("out of bounds writes should be dropped")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		row  string
		end  int
	}{
		{"inside", 1, "word", " word   ", 5},
		{"clipped right", 6, "word", "      wo", 10},
		{"clipped left", -2, "word", "rd      ", 2},
		{"wide runes", 0, "日本", "日本    ", 4},
		{"zero width dropped", 0, "e\u0301", "e       ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			if end := s.DrawText(tt.x, 0, tt.text); end != tt.end {
				t.Errorf("DrawText() = %d, expected %d", end, tt.end)
			}
			if got := s.Row(0); got != tt.row {
				t.Errorf("Row(0) = %q, expected %q", got, tt.row)
			}
		})
	}
}

func TestScreenWideRuneCells(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColored(1, 0, "語", ColorYellow)

	if c := s.GetCell(1, 0); c.Rune != '語' || c.Color != ColorYellow {
		t.Errorf("lead cell = %+v", c)
	}
	if c := s.GetCell(2, 0); c.Rune != 0 || c.Color != ColorYellow {
		t.Errorf("continuation cell = %+v, expected rune 0 with the same color", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "Paused", ColorGreen)

	if got := s.Row(1); got != "  Paused   " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Error("centered text should keep its color")
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(NewRect(0, 0, 7, 5), '.')
	s.DrawBox(NewRect(1, 1, 5, 3), ColorDefault)
	s.DrawHLine(0, 4, 7, '─', ColorGray)

	want := strings.Join([]string{
		".......",
		".┌───┐.",
		".│...│.",
		".└───┘.",
		"───────",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
	if s.GetCell(3, 4).Color != ColorGray {
		t.Error("HLine should be colored")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColored(0, 0, "hello", ColorRed)
	s.Clear()

	for y := range 2 {
		for x := range 5 {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "typer")
	s.DrawText(0, 3, "bottom")

	s.Resize(3, 2)
	if s.String() != "typ\n   " {
		t.Errorf("after shrink = %q", s.String())
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "typ   " {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if got := s.Row(2); got != "      " {
		t.Errorf("grown rows should be blank, got %q", got)
	}
	if got := s.Row(9); got != "      " {
		t.Errorf("out of range Row = %q, expected blanks", got)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Errorf("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextCentered(1, "score", ColorYellow)

	if row := s.Row(1); strings.TrimSpace(row) != "score" {
		t.Errorf("Row(1) = %q, expected centered score", row)
	}
	if s.GetCell(3, 1).Color != ColorYellow {
		t.Errorf("text should keep its color")
	}

	// Clipped at the right edge
	s.DrawText(10, 0, "abc", ColorDefault)
	if s.Row(0) != "          ab" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenFillAndBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.FillRect(1, 1, 3, 2, '#', ColorBlue)

	expected := "     \n ### \n ### \n     "
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}

	s.Clear()
	s.DrawBox(0, 0, 5, 4, ColorDefault)
	if s.Row(0) != "┌───┐" || s.Row(3) != "└───┘" {
		t.Errorf("box rows = %q / %q", s.Row(0), s.Row(3))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'x', ColorDefault)
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Errorf("resize should clear the buffer")
	}
}

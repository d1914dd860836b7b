package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, '@', ColorCyan)

	cell := s.GetCell(3, 4)
	if cell.Rune != '@' || cell.Color != ColorCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected '@' cyan", cell)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0) != blankCell {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(18, 0, "Hello", ColorYellow)

	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right boundary")
	}
	if s.GetCell(18, 0).Color != ColorYellow {
		t.Error("text color should be kept")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

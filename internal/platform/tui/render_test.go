package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/seal-run/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "seal")
	s.SetColored(4, 0, '~', core.ColorBrightYellow)
	s.DrawHLine(0, 1, 6, '█', core.ColorBrightCyan)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "seal~ " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "██████" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain", got)
	}
}

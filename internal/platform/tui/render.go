package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seal-run/internal/core"
)

// palette maps screen colors to ANSI 256 codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen to a styled string. Runs of cells sharing a
// color are styled together to keep escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

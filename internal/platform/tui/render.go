package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/graph-master/internal/core"
)

// ansiCodes are the terminal colors behind the core palette.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDim:           "238",
}

// colorStyles is indexed by core.Color.
var colorStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, 0, len(ansiCodes)+1)
	for c := core.ColorDefault; c.Valid(); c++ {
		style := lipgloss.NewStyle()
		if code, ok := ansiCodes[c]; ok {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles = append(styles, style)
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if !c.Valid() {
		c = core.ColorDefault
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so a run costs one escape
// sequence; default-colored runs are written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		if c == core.ColorDefault {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(styleFor(c).Render(run.String()))
		}
		run.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush(color)
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(color)
	}
	return sb.String()
}

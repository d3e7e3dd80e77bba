package plot

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/graph-master/internal/core"
)

// TerminalMetrics suit a terminal where a cell is one pixel and a grid unit
// is a few cells wide.
var TerminalMetrics = Metrics{
	TickGapX:      1,
	TickGapY:      1,
	LabelSpacingX: 3,
	LabelSpacingY: 1,
	PointLabelDX:  1,
	PointLabelDY:  0,
}

// inkStyle is how one ink looks on a terminal.
type inkStyle struct {
	color core.Color
	dot   rune
}

var terminalInks = map[Ink]inkStyle{
	InkGrid:   {core.ColorDim, '·'},
	InkAxis:   {core.ColorWhite, '┼'},
	InkLabel:  {core.ColorGray, '·'},
	InkTarget: {core.ColorBrightGreen, '●'},
	InkAnswer: {core.ColorBrightMagenta, '●'},
	InkLine:   {core.ColorBrightBlue, '●'},
	InkGuide:  {core.ColorYellow, '●'},
	InkCursor: {core.ColorBrightYellow, '✚'},
}

// ScreenCanvas draws into a rectangle of a core.Screen, one cell per pixel.
type ScreenCanvas struct {
	screen *core.Screen
	area   core.Rect
}

// NewScreenCanvas creates a canvas over area of screen.
func NewScreenCanvas(screen *core.Screen, area core.Rect) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, area: area}
}

// Size returns the drawable area in cells.
func (c *ScreenCanvas) Size() (int, int) {
	return c.area.W, c.area.H
}

// Clear blanks the canvas area.
func (c *ScreenCanvas) Clear() {
	c.screen.ClearRect(c.area)
}

// set writes a cell, ignoring anything outside the canvas area.
func (c *ScreenCanvas) set(x, y int, r rune, col core.Color) {
	sx, sy := c.area.X+x, c.area.Y+y
	if !c.area.Contains(sx, sy) {
		return
	}
	c.screen.SetColored(sx, sy, r, col)
}

func (c *ScreenCanvas) get(x, y int) rune {
	return c.screen.Get(c.area.X+x, c.area.Y+y)
}

// Line rasterizes a segment with a glyph that follows its direction.
func (c *ScreenCanvas) Line(x1, y1, x2, y2 float64, ink Ink) {
	st := styleFor(ink)
	ax, ay, bx, by := round(x1), round(y1), round(x2), round(y2)
	glyph := lineGlyph(float64(bx-ax), float64(by-ay))
	if ink == InkGrid {
		glyph = '·'
	}

	bresenham(ax, ay, bx, by, func(x, y int) {
		r := glyph
		if ink == InkAxis {
			r = axisJoin(c.get(x, y), glyph)
		}
		c.set(x, y, r, st.color)
	})
}

// Dot draws a single marker cell.
func (c *ScreenCanvas) Dot(x, y float64, ink Ink) {
	st := styleFor(ink)
	c.set(round(x), round(y), st.dot, st.color)
}

// Arrowhead draws an arrow glyph for the nearest of eight directions.
func (c *ScreenCanvas) Arrowhead(x, y, dx, dy float64, ink Ink) {
	st := styleFor(ink)
	c.set(round(x), round(y), arrowGlyph(dx, dy), st.color)
}

// Text writes a label on the row nearest y.
func (c *ScreenCanvas) Text(x, y float64, text string, align Align, ink Ink) {
	st := styleFor(ink)
	n := utf8.RuneCountInString(text)
	start := round(x)
	switch align {
	case AlignCenter:
		start -= n / 2
	case AlignRight:
		start -= n - 1
	}
	row := round(y)
	i := 0
	for _, r := range text {
		c.set(start+i, row, r, st.color)
		i++
	}
}

func styleFor(ink Ink) inkStyle {
	if st, ok := terminalInks[ink]; ok {
		return st
	}
	return inkStyle{core.ColorDefault, '*'}
}

// lineGlyph picks a box or slash glyph for a direction in cell space
// (y grows downward).
func lineGlyph(dx, dy float64) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	}
	steep := math.Abs(dy / dx)
	switch {
	case steep < 0.35:
		return '─'
	case steep > 2.5:
		return '│'
	case (dx > 0) == (dy < 0):
		return '╱'
	default:
		return '╲'
	}
}

// axisJoin turns two crossing axis strokes into a junction.
func axisJoin(existing, next rune) rune {
	if (existing == '─' && next == '│') || (existing == '│' && next == '─') || existing == '┼' {
		return '┼'
	}
	return next
}

// arrowGlyph maps a cell-space direction to one of eight arrows.
func arrowGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '•'
	}
	arrows := [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	angle := math.Atan2(-dy, dx) // flip y so up is positive
	sector := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[sector]
}

// bresenham visits every cell on the segment between two cells.
func bresenham(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Package plot draws Cartesian grids, points and lines onto a pixel surface.
//
// Drawing goes through the Canvas interface so the same renderer feeds the
// terminal screen and PNG export. All positions passed to a Canvas are pixel
// coordinates produced by a geom.Transform.
package plot

// Ink names what is being drawn; each Canvas picks its own color and glyph.
type Ink int

const (
	InkGrid   Ink = iota // unit gridlines
	InkAxis              // x and y axes
	InkLabel             // tick labels
	InkTarget            // the question's point or line
	InkAnswer            // what the player placed or typed
	InkLine              // a line being explored
	InkGuide             // rise/run helpers
	InkCursor            // hover cursor
)

// Canvas is a pixel surface the renderer draws on.
type Canvas interface {
	// Size returns the canvas size in pixels.
	Size() (width, height int)
	// Clear erases everything previously drawn.
	Clear()
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2 float64, ink Ink)
	// Dot draws a filled point marker.
	Dot(x, y float64, ink Ink)
	// Arrowhead draws an arrow tip at (x, y) pointing along (dx, dy).
	Arrowhead(x, y, dx, dy float64, ink Ink)
	// Text draws a label vertically centered on y and aligned on x.
	Text(x, y float64, text string, align Align, ink Ink)
}

// Align is the horizontal anchor of a text label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Metrics are the pixel distances a renderer uses for a particular surface.
type Metrics struct {
	TickGapX      float64 // distance from the x-axis down to its labels
	TickGapY      float64 // distance from the y-axis left to its labels
	LabelSpacingX float64 // minimum horizontal pixels between x labels
	LabelSpacingY float64 // minimum vertical pixels between y labels
	PointLabelDX  float64 // point annotation offset, right of the marker
	PointLabelDY  float64 // point annotation offset, above the marker
}

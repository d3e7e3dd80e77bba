package plot

import (
	"math"
	"strconv"

	"github.com/vovakirdan/graph-master/internal/geom"
)

// Renderer draws grid geometry through a Transform onto a Canvas.
type Renderer struct {
	canvas    Canvas
	transform geom.Transform
	metrics   Metrics
}

// NewRenderer binds a canvas, a transform and the canvas's metrics.
func NewRenderer(c Canvas, t geom.Transform, m Metrics) *Renderer {
	return &Renderer{canvas: c, transform: t, metrics: m}
}

// Transform returns the transform used for drawing.
func (r *Renderer) Transform() geom.Transform {
	return r.transform
}

// Visible returns the grid-unit area the canvas shows.
func (r *Renderer) Visible() geom.Bounds {
	w, h := r.canvas.Size()
	return r.transform.Visible(w, h)
}

// Grid clears the canvas and draws a fresh Cartesian grid: optional unit
// gridlines, both axes through the origin, integer tick labels except 0, and
// a single origin label. Calling it twice gives the same picture.
func (r *Renderer) Grid(showGrid bool) {
	c, t := r.canvas, r.transform
	c.Clear()

	w, h := c.Size()
	right, bottom := float64(w-1), float64(h-1)
	b := r.Visible()
	loX, hiX := geom.IntRange(b.MinX, b.MaxX)
	loY, hiY := geom.IntRange(b.MinY, b.MaxY)

	if showGrid {
		for x := loX; x <= hiX; x++ {
			if x == 0 {
				continue
			}
			px, _ := t.ToPixelF(float64(x), 0)
			c.Line(px, 0, px, bottom, InkGrid)
		}
		for y := loY; y <= hiY; y++ {
			if y == 0 {
				continue
			}
			_, py := t.ToPixelF(0, float64(y))
			c.Line(0, py, right, py, InkGrid)
		}
	}

	c.Line(0, t.OriginY, right, t.OriginY, InkAxis)
	c.Line(t.OriginX, 0, t.OriginX, bottom, InkAxis)

	m := r.metrics
	stepX := labelStep(t.Scale, m.LabelSpacingX)
	for x := loX; x <= hiX; x++ {
		if x == 0 || x%stepX != 0 {
			continue
		}
		px, _ := t.ToPixelF(float64(x), 0)
		c.Text(px, t.OriginY+m.TickGapX, strconv.Itoa(x), AlignCenter, InkLabel)
	}
	yScale := t.Scale
	if t.Aspect != 0 {
		yScale *= t.Aspect
	}
	stepY := labelStep(yScale, m.LabelSpacingY)
	for y := loY; y <= hiY; y++ {
		if y == 0 || y%stepY != 0 {
			continue
		}
		_, py := t.ToPixelF(0, float64(y))
		c.Text(t.OriginX-m.TickGapY, py, strconv.Itoa(y), AlignRight, InkLabel)
	}

	c.Text(t.OriginX-m.TickGapY, t.OriginY+m.TickGapX, "0", AlignRight, InkLabel)
}

// PointStyle controls how a point marker is annotated.
type PointStyle struct {
	Ink Ink
	// Name is a short label such as "A"; it never gives the answer away.
	Name string
	// Reveal adds the "(x, y)" annotation. Callers must leave it false for
	// target and answer points until the level has been checked.
	Reveal bool
}

// Point draws a filled marker with an optional label.
func (r *Renderer) Point(p geom.Point, style PointStyle) {
	px, py := r.transform.ToPixel(p)
	r.canvas.Dot(px, py, style.Ink)

	label := style.Name
	if style.Reveal {
		if label != "" {
			label += " "
		}
		label += p.String()
	}
	if label == "" {
		return
	}
	m := r.metrics
	r.canvas.Text(px+m.PointLabelDX, py-m.PointLabelDY, label, AlignLeft, style.Ink)
}

// Through draws the line through a and b across the whole canvas with an
// arrowhead at each end. Vertical pairs are drawn as vertical lines.
// It reports whether anything was drawn.
func (r *Renderer) Through(a, b geom.Point, ink Ink) bool {
	seg, ok := geom.ExtendThrough(a, b, r.Visible())
	if !ok {
		return false
	}
	x1, y1 := r.transform.ToPixelF(seg.X1, seg.Y1)
	x2, y2 := r.transform.ToPixelF(seg.X2, seg.Y2)
	r.canvas.Line(x1, y1, x2, y2, ink)
	r.canvas.Arrowhead(x1, y1, x1-x2, y1-y2, ink)
	r.canvas.Arrowhead(x2, y2, x2-x1, y2-y1, ink)
	return true
}

// Equation draws y = mx + c across the visible x range, clipped to the
// visible y range. Lines that never enter the view are skipped; the result
// reports whether anything was drawn.
func (r *Renderer) Equation(l geom.Line, ink Ink) bool {
	seg, ok := l.Clip(r.Visible())
	if !ok {
		return false
	}
	x1, y1 := r.transform.ToPixelF(seg.X1, seg.Y1)
	x2, y2 := r.transform.ToPixelF(seg.X2, seg.Y2)
	r.canvas.Line(x1, y1, x2, y2, ink)
	return true
}

// SlopeGuide draws the rise/run triangle starting at the y-intercept:
// run units to the right, then up or down to meet the line.
func (r *Renderer) SlopeGuide(l geom.Line, run float64) bool {
	if l.Slope == 0 || run == 0 {
		return false
	}
	b := r.Visible()
	rise := l.Slope * run
	top := l.Intercept + rise
	if run < b.MinX || run > b.MaxX {
		return false
	}
	for _, y := range []float64{l.Intercept, top} {
		if y < b.MinY || y > b.MaxY {
			return false
		}
	}

	t := r.transform
	sx, sy := t.ToPixelF(0, l.Intercept)
	cx, cy := t.ToPixelF(run, l.Intercept)
	ex, ey := t.ToPixelF(run, top)
	r.canvas.Line(sx, sy, cx, cy, InkGuide)
	r.canvas.Line(cx, cy, ex, ey, InkGuide)
	r.canvas.Text(cx+r.metrics.PointLabelDX, (cy+ey)/2, "rise "+geom.FormatNumber(rise), AlignLeft, InkGuide)
	return true
}

// Cursor draws the hover marker for keyboard and mouse placement.
func (r *Renderer) Cursor(p geom.Point) {
	px, py := r.transform.ToPixel(p)
	r.canvas.Dot(px, py, InkCursor)
}

// labelStep picks how many units apart tick labels go so they don't collide.
func labelStep(pixelsPerUnit, minSpacing float64) int {
	if pixelsPerUnit <= 0 || minSpacing <= pixelsPerUnit {
		return 1
	}
	return int(math.Ceil(minSpacing / pixelsPerUnit))
}

package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageMetrics suit a raster canvas with a 40px grid unit.
var ImageMetrics = Metrics{
	TickGapX:      15,
	TickGapY:      10,
	LabelSpacingX: 24,
	LabelSpacingY: 18,
	PointLabelDX:  10,
	PointLabelDY:  12,
}

// imageInk is the raster look of one ink.
type imageInk struct {
	color  string
	width  float64
	radius float64
}

var imageInks = map[Ink]imageInk{
	InkGrid:   {"#6366f133", 1, 0},
	InkAxis:   {"#e2e8f0", 2, 0},
	InkLabel:  {"#94a3b8", 1, 0},
	InkTarget: {"#10b981", 3, 6},
	InkAnswer: {"#e91e63", 3, 6},
	InkLine:   {"#6366f1", 3, 5},
	InkGuide:  {"#f59e0b", 2, 4},
	InkCursor: {"#facc15", 2, 4},
}

const background = "#0f172a"

// ImageCanvas draws anti-aliased geometry into a gg context for PNG export.
type ImageCanvas struct {
	dc     *gg.Context
	source *text.FontSource
}

// NewImageCanvas creates a width×height raster canvas with Go Regular labels.
func NewImageCanvas(width, height int) (*ImageCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("plot: invalid image size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("plot: load font: %w", err)
	}
	dc := gg.NewContext(width, height)
	dc.SetFont(source.Face(12))
	dc.SetLineCap(gg.LineCapRound)

	c := &ImageCanvas{dc: dc, source: source}
	c.Clear()
	return c, nil
}

// Size returns the image size in pixels.
func (c *ImageCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear paints the background over the whole image.
func (c *ImageCanvas) Clear() {
	c.dc.ClearWithColor(gg.Hex(background))
}

// Line strokes a segment in the ink's color and width.
func (c *ImageCanvas) Line(x1, y1, x2, y2 float64, ink Ink) {
	st := imageInkFor(ink)
	c.dc.SetHexColor(st.color)
	c.dc.SetLineWidth(st.width)
	c.dc.DrawLine(x1, y1, x2, y2)
	_ = c.dc.Stroke()
}

// Dot fills a circle marker.
func (c *ImageCanvas) Dot(x, y float64, ink Ink) {
	st := imageInkFor(ink)
	r := st.radius
	if r == 0 {
		r = 3
	}
	c.dc.SetHexColor(st.color)
	c.dc.DrawCircle(x, y, r)
	_ = c.dc.Fill()
}

// Arrowhead fills a small triangle at (x, y) pointing along (dx, dy).
func (c *ImageCanvas) Arrowhead(x, y, dx, dy float64, ink Ink) {
	n := math.Hypot(dx, dy)
	if n == 0 {
		c.Dot(x, y, ink)
		return
	}
	ux, uy := dx/n, dy/n
	const length, half = 12.0, 6.0
	bx, by := x-ux*length, y-uy*length

	st := imageInkFor(ink)
	c.dc.SetHexColor(st.color)
	c.dc.MoveTo(x, y)
	c.dc.LineTo(bx-uy*half, by+ux*half)
	c.dc.LineTo(bx+uy*half, by-ux*half)
	c.dc.ClosePath()
	_ = c.dc.Fill()
}

// Text draws a label anchored on its vertical middle.
func (c *ImageCanvas) Text(x, y float64, s string, align Align, ink Ink) {
	ax := 0.0
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	c.dc.SetHexColor(imageInkFor(ink).color)
	c.dc.DrawStringAnchored(s, x, y, ax, 0.5)
}

// SavePNG writes the image to path.
func (c *ImageCanvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image as PNG to w.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context and font.
func (c *ImageCanvas) Close() error {
	err := c.dc.Close()
	if cerr := c.source.Close(); err == nil {
		err = cerr
	}
	return err
}

func imageInkFor(ink Ink) imageInk {
	if st, ok := imageInks[ink]; ok {
		return st
	}
	return imageInk{"#ffffff", 1, 3}
}

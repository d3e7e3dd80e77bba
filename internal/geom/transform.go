package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadTransform is returned when a transform would not show the origin
// or has a non-positive scale.
var ErrBadTransform = errors.New("geom: invalid transform")

// Transform maps grid units to pixel space and back.
//
// Pixel space has its origin at the top-left with Y growing downward.
// Scale is the number of horizontal pixels per grid unit; Aspect scales the
// vertical axis relative to it (terminal cells are about twice as tall as
// they are wide, so a terminal uses 0.5).
type Transform struct {
	OriginX float64
	OriginY float64
	Scale   float64
	Aspect  float64
}

// NewTransform builds a transform for a width×height pixel canvas with the
// origin at the given pixel. The origin must lie inside the canvas.
func NewTransform(width, height int, originX, originY, scale, aspect float64) (Transform, error) {
	if aspect == 0 {
		aspect = 1
	}
	if scale <= 0 || aspect < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Transform{}, fmt.Errorf("%w: scale %v, aspect %v", ErrBadTransform, scale, aspect)
	}
	if originX < 0 || originX >= float64(width) || originY < 0 || originY >= float64(height) {
		return Transform{}, fmt.Errorf("%w: origin (%v, %v) outside %dx%d canvas",
			ErrBadTransform, originX, originY, width, height)
	}
	return Transform{OriginX: originX, OriginY: originY, Scale: scale, Aspect: aspect}, nil
}

// Centered builds a transform with the origin in the middle of the canvas.
// The origin is snapped to a whole pixel so gridlines land on pixel rows.
func Centered(width, height int, scale, aspect float64) (Transform, error) {
	return NewTransform(width, height, float64(width/2), float64(height/2), scale, aspect)
}

// yScale returns vertical pixels per grid unit.
func (t Transform) yScale() float64 {
	if t.Aspect == 0 {
		return t.Scale
	}
	return t.Scale * t.Aspect
}

// ToPixel converts a grid point to pixel coordinates.
func (t Transform) ToPixel(p Point) (float64, float64) {
	return t.ToPixelF(float64(p.X), float64(p.Y))
}

// ToPixelF converts fractional grid coordinates to pixel coordinates.
func (t Transform) ToPixelF(x, y float64) (float64, float64) {
	return t.OriginX + x*t.Scale, t.OriginY - y*t.yScale()
}

// ToGridF converts pixel coordinates to fractional grid coordinates.
func (t Transform) ToGridF(px, py float64) (float64, float64) {
	return (px - t.OriginX) / t.Scale, (t.OriginY - py) / t.yScale()
}

// ToGrid converts pixel coordinates to the nearest grid point.
// This is the snapping used for clicks and the hover cursor.
func (t Transform) ToGrid(px, py float64) Point {
	x, y := t.ToGridF(px, py)
	return Point{X: roundHalfAway(x), Y: roundHalfAway(y)}
}

// Visible returns the grid-unit rectangle shown on a width×height canvas.
// Pixel centers run from 0 to width-1, so that is the visible span.
func (t Transform) Visible(width, height int) Bounds {
	minX, maxY := t.ToGridF(0, 0)
	maxX, minY := t.ToGridF(float64(width-1), float64(height-1))
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

func roundHalfAway(v float64) int {
	return int(math.Round(v))
}

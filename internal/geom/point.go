// Package geom holds the coordinate geometry shared by every level kind:
// grid points, the grid/pixel transform, linear equations and answer parsing.
package geom

import (
	"fmt"
	"math"
)

// Point is a position on the grid in whole units.
// X grows to the right and Y grows upward.
type Point struct {
	X int
	Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point in textbook form, e.g. "(3, -2)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Bounds is a rectangle in grid units, inclusive on all sides.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// IntRange returns the whole-unit span [lo, hi] covered on one axis.
func IntRange(min, max float64) (lo, hi int) {
	return int(math.Ceil(min)), int(math.Floor(max))
}

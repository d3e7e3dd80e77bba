package geom

import (
	"errors"
	"math"
	"strings"
)

// ErrVertical is returned when two points share an x-coordinate, so the
// line through them has no slope.
var ErrVertical = errors.New("geom: vertical line has undefined slope")

// Line is a non-vertical straight line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// NewLine is a convenience constructor for Line.
func NewLine(slope, intercept float64) Line {
	return Line{Slope: slope, Intercept: intercept}
}

// LineThrough returns the line through a and b.
// It fails with ErrVertical when a.X == b.X instead of producing Inf or NaN.
func LineThrough(a, b Point) (Line, error) {
	if a.X == b.X {
		return Line{}, ErrVertical
	}
	m := float64(b.Y-a.Y) / float64(b.X-a.X)
	return Line{Slope: m, Intercept: float64(a.Y) - m*float64(a.X)}, nil
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// String formats the line the way it is written in class:
// "y = 2x - 3", "y = -x", "y = 4", never "+ -3".
func (l Line) String() string {
	var sb strings.Builder
	sb.WriteString("y = ")

	m, c := cleanZero(l.Slope), cleanZero(l.Intercept)
	switch {
	case m == 0:
		sb.WriteString(FormatNumber(c))
		return sb.String()
	case m == 1:
		sb.WriteString("x")
	case m == -1:
		sb.WriteString("-x")
	default:
		sb.WriteString(FormatNumber(m))
		sb.WriteString("x")
	}

	switch {
	case c > 0:
		sb.WriteString(" + ")
		sb.WriteString(FormatNumber(c))
	case c < 0:
		sb.WriteString(" - ")
		sb.WriteString(FormatNumber(-c))
	}
	return sb.String()
}

// Segment is a straight piece of a line in grid units.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Clip returns the part of the line inside b.
// The line is evaluated at the x extremes of b and cut down to b's y range;
// ok is false when no part of the line is visible.
func (l Line) Clip(b Bounds) (Segment, bool) {
	lo, hi := b.MinX, b.MaxX
	if l.Slope == 0 {
		if l.Intercept < b.MinY || l.Intercept > b.MaxY {
			return Segment{}, false
		}
	} else {
		xa := (b.MinY - l.Intercept) / l.Slope
		xb := (b.MaxY - l.Intercept) / l.Slope
		lo = math.Max(lo, math.Min(xa, xb))
		hi = math.Min(hi, math.Max(xa, xb))
	}
	if lo > hi {
		return Segment{}, false
	}
	return Segment{X1: lo, Y1: l.At(lo), X2: hi, Y2: l.At(hi)}, true
}

// ExtendThrough returns the segment through a and b stretched to the edges
// of bounds, oriented from a's side toward b's side. Vertical pairs give a
// vertical segment. ok is false when a and b coincide or the line misses b.
func ExtendThrough(a, b Point, bounds Bounds) (Segment, bool) {
	if a == b {
		return Segment{}, false
	}
	if a.X == b.X {
		x := float64(a.X)
		if x < bounds.MinX || x > bounds.MaxX {
			return Segment{}, false
		}
		if b.Y > a.Y {
			return Segment{X1: x, Y1: bounds.MinY, X2: x, Y2: bounds.MaxY}, true
		}
		return Segment{X1: x, Y1: bounds.MaxY, X2: x, Y2: bounds.MinY}, true
	}

	l, _ := LineThrough(a, b)
	seg, ok := l.Clip(bounds)
	if !ok {
		return Segment{}, false
	}
	if b.X < a.X {
		seg = Segment{X1: seg.X2, Y1: seg.Y2, X2: seg.X1, Y2: seg.Y1}
	}
	return seg, true
}

func cleanZero(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}

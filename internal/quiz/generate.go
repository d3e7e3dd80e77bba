package quiz

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/graph-master/internal/geom"
)

// Limits bound the numbers the generator may produce.
type Limits struct {
	MaxX         int     // |x| of generated points and table x values
	MaxY         int     // |y| of generated points
	MaxIntercept int     // |c| of generated equations
	MaxSlope     float64 // |m| of match questions and the slider range
	// View is the grid area the player can see. Equations that would not
	// show on it are re-rolled. A zero View disables the check.
	View geom.Bounds
}

// DefaultLimits match a ±10 grid.
func DefaultLimits() Limits {
	return Limits{MaxX: 8, MaxY: 8, MaxIntercept: 5, MaxSlope: 5}
}

// equationSlopes is the small set of gradients used for written equations.
var equationSlopes = []float64{-3, -2, -1, -0.5, 0.5, 1, 2, 3}

// tableSlopes keep every table cell an integer.
var tableSlopes = []float64{-3, -2, -1, 1, 2, 3}

// maxRolls caps rejection sampling; the last roll is used if no valid
// instance turns up, which only happens with degenerate limits.
const maxRolls = 1000

// Generator produces random questions. It is deterministic for a given seed.
type Generator struct {
	rng    *rand.Rand
	limits Limits
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64, limits Limits) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		limits: sanitize(limits),
	}
}

// Limits returns the current limits.
func (g *Generator) Limits() Limits {
	return g.limits
}

// SetLimits changes the limits for questions generated from now on.
func (g *Generator) SetLimits(l Limits) {
	g.limits = sanitize(l)
}

func sanitize(l Limits) Limits {
	l.MaxX = max(l.MaxX, 1)
	l.MaxY = max(l.MaxY, 1)
	l.MaxIntercept = max(l.MaxIntercept, 0)
	if l.MaxSlope <= 0 {
		l.MaxSlope = 1
	}
	return l
}

// Next generates a question of kind k.
func (g *Generator) Next(k Kind) Question {
	switch k {
	case KindGradient, KindEquation:
		a, b := g.pair()
		line, _ := geom.LineThrough(a, b)
		return Question{Kind: k, A: a, B: b, Line: line}
	case KindTable:
		return Question{Kind: k, Line: g.equation(tableSlopes), Xs: g.tableXs()}
	case KindGraph:
		return Question{Kind: k, Line: g.equation(equationSlopes)}
	case KindMatch:
		return Question{
			Kind:         k,
			Line:         g.matchLine(),
			MaxSlope:     g.limits.MaxSlope,
			MaxIntercept: g.limits.MaxIntercept,
		}
	default:
		return Question{Kind: KindPlot, Target: g.point()}
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// point returns a point other than the origin.
func (g *Generator) point() geom.Point {
	var p geom.Point
	for i := 0; i < maxRolls; i++ {
		p = geom.Pt(g.between(-g.limits.MaxX, g.limits.MaxX), g.between(-g.limits.MaxY, g.limits.MaxY))
		if p != (geom.Point{}) {
			break
		}
	}
	return p
}

// pair returns two points with x drawn from disjoint negative and positive
// ranges, so the line through them always has a gradient.
func (g *Generator) pair() (geom.Point, geom.Point) {
	var a, b geom.Point
	for i := 0; i < maxRolls; i++ {
		a = geom.Pt(g.between(-g.limits.MaxX, -1), g.between(-g.limits.MaxY, g.limits.MaxY))
		b = geom.Pt(g.between(1, g.limits.MaxX), g.between(-g.limits.MaxY, g.limits.MaxY))
		if a.X != b.X && a != b {
			break
		}
	}
	return a, b
}

// equation picks a slope from slopes and an intercept, re-rolling lines
// that would not be visible.
func (g *Generator) equation(slopes []float64) geom.Line {
	var l geom.Line
	for i := 0; i < maxRolls; i++ {
		l = geom.NewLine(
			slopes[g.rng.Intn(len(slopes))],
			float64(g.between(-g.limits.MaxIntercept, g.limits.MaxIntercept)),
		)
		if g.visible(l) {
			break
		}
	}
	return l
}

func (g *Generator) visible(l geom.Line) bool {
	v := g.limits.View
	if v == (geom.Bounds{}) {
		return true
	}
	if l.Intercept < v.MinY || l.Intercept > v.MaxY {
		return false
	}
	_, ok := l.Clip(v)
	return ok
}

// matchLine picks a slope on a 0.1 grid and an integer intercept.
func (g *Generator) matchLine() geom.Line {
	tenths := int(math.Round(g.limits.MaxSlope * 10))
	slope := float64(g.between(-tenths, tenths)) / 10
	return geom.NewLine(slope, float64(g.between(-g.limits.MaxIntercept, g.limits.MaxIntercept)))
}

// tableXs returns three distinct sorted x values.
func (g *Generator) tableXs() []int {
	span := min(g.limits.MaxX, 5)
	perm := g.rng.Perm(2*span + 1)
	xs := make([]int, 3)
	for i := range xs {
		xs[i] = perm[i] - span
	}
	sort.Ints(xs)
	return xs
}

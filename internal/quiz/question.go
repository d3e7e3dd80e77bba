package quiz

import (
	"fmt"
	"math"

	"github.com/vovakirdan/graph-master/internal/geom"
)

// Question is one generated problem. Which fields are meaningful depends on
// Kind: Target for plot, A and B for gradient and equation, Line for every
// kind except plot, Xs for table.
type Question struct {
	Kind   Kind
	Target geom.Point
	A, B   geom.Point
	Line   geom.Line
	Xs     []int

	// Slider ranges for match questions.
	MaxSlope     float64
	MaxIntercept int
}

// Prompt is the instruction shown to the player. It never contains
// information the player is meant to work out.
func (q Question) Prompt() string {
	switch q.Kind {
	case KindPlot:
		return "Plot the point " + q.Target.String()
	case KindGradient:
		return "Find the gradient of the line through A and B"
	case KindEquation:
		return "Find the equation y = mx + c of the line through A and B"
	case KindTable:
		return "Complete the table for " + q.Line.String()
	case KindGraph:
		return "Plot two points on " + q.Line.String()
	case KindMatch:
		return "Match " + q.Line.String()
	}
	return ""
}

// FieldLabels returns the labels of the text inputs for this question.
func (q Question) FieldLabels() []string {
	if q.Kind == KindTable {
		labels := make([]string, len(q.Xs))
		for i, x := range q.Xs {
			labels[i] = fmt.Sprintf("x = %d", x)
		}
		return labels
	}
	return append([]string(nil), Describe(q.Kind).Fields...)
}

// Expected returns the table's y values.
func (q Question) Expected() []int {
	ys := make([]int, len(q.Xs))
	for i, x := range q.Xs {
		ys[i] = int(math.Round(q.Line.At(float64(x))))
	}
	return ys
}

// Solution describes the correct answer, shown once the level is over.
func (q Question) Solution() string {
	switch q.Kind {
	case KindPlot:
		return "The point is at " + q.Target.String()
	case KindGradient:
		return "The gradient is " + geom.Ratio(q.B.Y-q.A.Y, q.B.X-q.A.X)
	case KindEquation:
		return "The line is " + q.Line.String()
	case KindTable:
		ys := q.Expected()
		s := "y ="
		for i, y := range ys {
			if i > 0 {
				s += ","
			}
			s += fmt.Sprintf(" %d", y)
		}
		return s
	case KindGraph, KindMatch:
		return "The line is " + q.Line.String()
	}
	return ""
}

// Answer is what the player has entered so far.
type Answer struct {
	Points []geom.Point
	Fields []string
	Slider geom.Line
}

// DefaultSlider is the slider position at the start of a match level.
var DefaultSlider = geom.NewLine(2, 1)

// NewAnswer returns an empty answer shaped for q.
func NewAnswer(q Question) Answer {
	a := Answer{Fields: make([]string, len(q.FieldLabels()))}
	if Describe(q.Kind).Slider {
		a.Slider = DefaultSlider
	}
	return a
}

func (a Answer) clone() Answer {
	return Answer{
		Points: append([]geom.Point(nil), a.Points...),
		Fields: append([]string(nil), a.Fields...),
		Slider: a.Slider,
	}
}

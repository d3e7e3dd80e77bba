package quiz

import (
	"fmt"
	"math"

	"github.com/vovakirdan/graph-master/internal/geom"
)

// PointPolicy decides when a placed point matches the target.
type PointPolicy string

const (
	// PointExact requires the placed point to equal the target.
	PointExact PointPolicy = "exact"
	// PointDistance accepts points closer than Tolerances.PointDistance.
	PointDistance PointPolicy = "distance"
)

// Tolerances hold the numeric slack each check allows.
type Tolerances struct {
	PointPolicy    PointPolicy
	PointDistance  float64
	Slope          float64 // gradient and equation slope
	Intercept      float64 // equation intercept
	GraphSlope     float64 // slope derived from plotted points
	GraphIntercept float64 // intercept derived from plotted points
	MatchSlope     float64 // slider slope
}

// DefaultTolerances returns the standard checking policy.
func DefaultTolerances() Tolerances {
	return Tolerances{
		PointPolicy:    PointExact,
		PointDistance:  1.5,
		Slope:          0.05,
		Intercept:      0.05,
		GraphSlope:     0.15,
		GraphIntercept: 1.0,
		MatchSlope:     0.1,
	}
}

// Verdict is the outcome of checking an answer.
type Verdict int

const (
	Incomplete       Verdict = iota // input missing or unreadable; not counted
	Vertical                        // plotted points share an x value; not counted
	Correct                         // fully right
	Incorrect                       // wrong
	PartialSlope                    // slope right, intercept wrong
	PartialIntercept                // intercept right, slope wrong
)

var verdictNames = [...]string{
	Incomplete:       "incomplete",
	Vertical:         "vertical",
	Correct:          "correct",
	Incorrect:        "incorrect",
	PartialSlope:     "partial-slope",
	PartialIntercept: "partial-intercept",
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return fmt.Sprintf("verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// Counted reports whether the verdict is a real attempt.
func (v Verdict) Counted() bool {
	return v >= Correct
}

// Result is a verdict with feedback for the player.
type Result struct {
	Verdict  Verdict
	Message  string
	Distance float64 // plot questions: distance from the target in grid units
}

const (
	msgPlace    = "Place your point on the grid first."
	msgPlaceTwo = "Place two points on the grid first."
	msgFill     = "Fill in every answer box first."
	msgVertical = "Your points make a vertical line, which has no gradient. Move one of them."
)

// Validate checks a against q. Missing or unreadable input gives an
// Incomplete result rather than an error.
func Validate(q Question, a Answer, tol Tolerances) Result {
	switch q.Kind {
	case KindPlot:
		return checkPoint(q, a, tol)
	case KindGradient:
		return checkGradient(q, a, tol)
	case KindEquation:
		return checkEquation(q, a, tol)
	case KindTable:
		return checkTable(q, a)
	case KindGraph:
		return checkGraph(q, a, tol)
	case KindMatch:
		return checkMatch(q, a, tol)
	}
	return Result{Verdict: Incomplete, Message: "Unknown question."}
}

func checkPoint(q Question, a Answer, tol Tolerances) Result {
	if len(a.Points) == 0 {
		return Result{Verdict: Incomplete, Message: msgPlace}
	}
	p := a.Points[len(a.Points)-1]
	d := geom.Distance(p, q.Target)

	ok := p == q.Target
	if tol.PointPolicy == PointDistance {
		ok = d < tol.PointDistance
	}
	if ok {
		return Result{Verdict: Correct, Message: "Spot on! The point is " + q.Target.String() + ".", Distance: d}
	}
	return Result{
		Verdict:  Incorrect,
		Message:  fmt.Sprintf("Not quite: you placed %s, the point is %s.", p, q.Target),
		Distance: d,
	}
}

// readFields parses every text field. A blank or malformed field makes the
// answer incomplete and is reported in the message.
func readFields(a Answer, n int) ([]float64, *Result) {
	if len(a.Fields) < n {
		return nil, &Result{Verdict: Incomplete, Message: msgFill}
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, ok, err := geom.ParseNumber(a.Fields[i])
		if err != nil {
			return nil, &Result{
				Verdict: Incomplete,
				Message: fmt.Sprintf("Can't read %q. Use a number like -3, 0.5 or 2/4.", a.Fields[i]),
			}
		}
		if !ok {
			return nil, &Result{Verdict: Incomplete, Message: msgFill}
		}
		vals[i] = v
	}
	return vals, nil
}

func within(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol+1e-9
}

func checkGradient(q Question, a Answer, tol Tolerances) Result {
	vals, bad := readFields(a, 1)
	if bad != nil {
		return *bad
	}
	if within(vals[0], q.Line.Slope, tol.Slope) {
		return Result{Verdict: Correct, Message: "Correct! " + q.Solution() + "."}
	}
	return Result{Verdict: Incorrect, Message: "Not quite. " + q.Solution() + " (rise over run)."}
}

func checkEquation(q Question, a Answer, tol Tolerances) Result {
	vals, bad := readFields(a, 2)
	if bad != nil {
		return *bad
	}
	slopeOK := within(vals[0], q.Line.Slope, tol.Slope)
	interceptOK := within(vals[1], q.Line.Intercept, tol.Intercept)
	return slopeIntercept(q, slopeOK, interceptOK)
}

func slopeIntercept(q Question, slopeOK, interceptOK bool) Result {
	switch {
	case slopeOK && interceptOK:
		return Result{Verdict: Correct, Message: "Correct! " + q.Solution() + "."}
	case slopeOK:
		return Result{Verdict: PartialSlope, Message: "The gradient is right but the intercept is not. " + q.Solution() + "."}
	case interceptOK:
		return Result{Verdict: PartialIntercept, Message: "The intercept is right but the gradient is not. " + q.Solution() + "."}
	}
	return Result{Verdict: Incorrect, Message: "Not quite. " + q.Solution() + "."}
}

func checkTable(q Question, a Answer) Result {
	vals, bad := readFields(a, len(q.Xs))
	if bad != nil {
		return *bad
	}
	wrong := 0
	for i, want := range q.Expected() {
		if vals[i] != float64(want) {
			wrong++
		}
	}
	if wrong == 0 {
		return Result{Verdict: Correct, Message: "Every value is right!"}
	}
	return Result{
		Verdict: Incorrect,
		Message: fmt.Sprintf("%d of %d values are wrong. %s.", wrong, len(q.Xs), q.Solution()),
	}
}

func checkGraph(q Question, a Answer, tol Tolerances) Result {
	if len(a.Points) < 2 {
		return Result{Verdict: Incomplete, Message: msgPlaceTwo}
	}
	p1, p2 := a.Points[len(a.Points)-2], a.Points[len(a.Points)-1]
	got, err := geom.LineThrough(p1, p2)
	if err != nil {
		return Result{Verdict: Vertical, Message: msgVertical}
	}
	slopeOK := within(got.Slope, q.Line.Slope, tol.GraphSlope)
	interceptOK := within(got.Intercept, q.Line.Intercept, tol.GraphIntercept)
	if slopeOK && interceptOK {
		return Result{Verdict: Correct, Message: "Great graph! Both points lie on " + q.Line.String() + "."}
	}
	r := slopeIntercept(q, slopeOK, interceptOK)
	r.Message = "You drew " + got.String() + ". " + r.Message
	return r
}

func checkMatch(q Question, a Answer, tol Tolerances) Result {
	dm := math.Abs(a.Slider.Slope - q.Line.Slope)
	dc := math.Abs(a.Slider.Intercept - q.Line.Intercept)
	if dm < tol.MatchSlope && dc < 1e-9 {
		return Result{Verdict: Correct, Message: "Perfect match!"}
	}
	return Result{Verdict: Incorrect, Message: "Not quite right. Try again!"}
}

// SliderAccuracy scores how close the slider line is to the target, 0 to 100.
func SliderAccuracy(current, target geom.Line) int {
	slope := math.Max(0, 100-math.Abs(current.Slope-target.Slope)*10)
	intercept := math.Max(0, 100-math.Abs(current.Intercept-target.Intercept)*5)
	return int(math.Round((slope + intercept) / 2))
}

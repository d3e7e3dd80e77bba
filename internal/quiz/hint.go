package quiz

import (
	"fmt"
	"math"

	"github.com/vovakirdan/graph-master/internal/geom"
)

// Hint returns a nudge toward the answer without giving it away.
func Hint(l LevelState) string {
	q := l.Question
	switch q.Kind {
	case KindPlot:
		return fmt.Sprintf("Start at the origin. Go %s along x, then %s along y.",
			direction(q.Target.X, "right", "left"), direction(q.Target.Y, "up", "down"))
	case KindGradient:
		return "Gradient = rise / run = (y₂ - y₁) / (x₂ - x₁). The line " + trend(q.Line.Slope) + "."
	case KindEquation:
		return "Work out m = rise / run first. Then c is where the line crosses the y-axis."
	case KindTable:
		if len(q.Xs) == 0 {
			return "Put each x into " + q.Line.String() + "."
		}
		return fmt.Sprintf("Put each x into %s. For x = %d that is %s.",
			q.Line, q.Xs[0], substitution(q.Line, q.Xs[0]))
	case KindGraph:
		return fmt.Sprintf("Start at (0, %s) on the y-axis, then go 1 right and %s %s.",
			geom.FormatNumber(q.Line.Intercept), geom.FormatNumber(math.Abs(q.Line.Slope)), direction(sign(q.Line.Slope), "up", "down"))
	case KindMatch:
		cur := l.Answer.Slider
		slope := "Decrease slope"
		if cur.Slope < q.Line.Slope {
			slope = "Increase slope"
		}
		intercept := "decrease intercept"
		if cur.Intercept < q.Line.Intercept {
			intercept = "increase intercept"
		}
		return slope + " and " + intercept + "."
	}
	return ""
}

func direction(v int, pos, neg string) string {
	switch {
	case v > 0:
		return pos
	case v < 0:
		return neg
	}
	return "nowhere"
}

func trend(m float64) string {
	switch {
	case m > 0:
		return "goes up from left to right"
	case m < 0:
		return "goes down from left to right"
	}
	return "is flat"
}

func substitution(l geom.Line, x int) string {
	return fmt.Sprintf("%s × %d %s", geom.FormatNumber(l.Slope), x, signed(l.Intercept))
}

func signed(v float64) string {
	if v < 0 {
		return "- " + geom.FormatNumber(-v)
	}
	return "+ " + geom.FormatNumber(v)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

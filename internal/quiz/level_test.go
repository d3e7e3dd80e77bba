package quiz

import (
	"testing"

	"github.com/vovakirdan/graph-master/internal/geom"
)

func plotLevel() LevelState {
	return NewLevel(1, Question{Kind: KindPlot, Target: geom.Pt(3, 4)})
}

func TestApplyIncompleteLeavesLevelOpen(t *testing.T) {
	l := plotLevel().Submit(DefaultTolerances())

	if l.Submitted || l.Checked || l.Done() {
		t.Errorf("after incomplete submit: submitted=%v checked=%v done=%v, expected all false",
			l.Submitted, l.Checked, l.Done())
	}
	if l.Attempts != 0 {
		t.Errorf("Attempts = %d, expected 0", l.Attempts)
	}
	if l.Last.Verdict != Incomplete {
		t.Errorf("Last.Verdict = %v, expected %v", l.Last.Verdict, Incomplete)
	}
}

func TestApplyCorrectSolvesLevel(t *testing.T) {
	l := plotLevel().Place(geom.Pt(3, 4)).Submit(DefaultTolerances())

	if l.Status != Solved || !l.Submitted || !l.CanAdvance() {
		t.Fatalf("status = %v submitted = %v, expected solved and submitted", l.Status, l.Submitted)
	}
	if !l.Reveal() {
		t.Errorf("Reveal() = false after a counted verdict, expected true")
	}

	again := Apply(l, Result{Verdict: Incorrect})
	if again.Status != Solved || again.Attempts != 1 {
		t.Errorf("Apply() after solve changed the level: status=%v attempts=%d", again.Status, again.Attempts)
	}
	if moved := l.Place(geom.Pt(0, 1)); moved.Answer.Points[0] != geom.Pt(3, 4) {
		t.Errorf("Place() after solve moved the point to %v", moved.Answer.Points[0])
	}
}

func TestApplyIncorrectReveals(t *testing.T) {
	l := plotLevel().Place(geom.Pt(3, 5))
	if l.Reveal() {
		t.Fatalf("Reveal() = true before any check, expected false")
	}

	l = l.Submit(DefaultTolerances())
	if l.Status != Revealed || !l.Submitted || !l.Reveal() {
		t.Errorf("status = %v submitted = %v reveal = %v, expected revealed", l.Status, l.Submitted, l.Reveal())
	}
}

func TestApplyMatchRetries(t *testing.T) {
	q := Question{Kind: KindMatch, Line: geom.NewLine(1, -2), MaxSlope: 5, MaxIntercept: 10}
	l := NewLevel(1, q).Submit(DefaultTolerances())

	if l.Done() || l.Submitted {
		t.Fatalf("wrong match ended the level: status = %v", l.Status)
	}
	if l.Attempts != 1 || !l.Checked {
		t.Errorf("attempts = %d checked = %v, expected 1 and true", l.Attempts, l.Checked)
	}

	l = l.Nudge(-1, -3).Submit(DefaultTolerances())
	if l.Status != Solved || l.Attempts != 2 {
		t.Errorf("status = %v attempts = %d, expected solved after 2 attempts", l.Status, l.Attempts)
	}
}

func TestApplyVerticalIsNotCounted(t *testing.T) {
	q := Question{Kind: KindGraph, Line: geom.NewLine(1, 0)}
	l := NewLevel(1, q).Place(geom.Pt(1, 0)).Place(geom.Pt(1, 3)).Submit(DefaultTolerances())

	if l.Last.Verdict != Vertical || l.Checked || l.Submitted {
		t.Errorf("verdict = %v checked = %v submitted = %v, expected uncounted vertical",
			l.Last.Verdict, l.Checked, l.Submitted)
	}
}

func TestLevelIsAValue(t *testing.T) {
	q := Question{Kind: KindEquation, Line: geom.NewLine(2, 1)}
	base := NewLevel(1, q).Type(0, '2')
	next := base.Type(0, '5').Type(1, '1')

	if base.Answer.Fields[0] != "2" || base.Answer.Fields[1] != "" {
		t.Errorf("original fields changed to %q", base.Answer.Fields)
	}
	if next.Answer.Fields[0] != "25" || next.Answer.Fields[1] != "1" {
		t.Errorf("new fields = %q, expected [25 1]", next.Answer.Fields)
	}
	if erased := next.Erase(0); erased.Answer.Fields[0] != "2" || next.Answer.Fields[0] != "25" {
		t.Errorf("Erase() = %q, original %q", erased.Answer.Fields[0], next.Answer.Fields[0])
	}
}

func TestTypeFiltersRunes(t *testing.T) {
	l := NewLevel(1, Question{Kind: KindGradient})
	for _, r := range "-3x/ 4a" {
		l = l.Type(0, r)
	}
	if got := l.Answer.Fields[0]; got != "-3/4" {
		t.Errorf("field = %q, expected %q", got, "-3/4")
	}
	if got := l.Type(5, '1'); got.Answer.Fields[0] != "-3/4" {
		t.Errorf("Type() on a missing field changed the answer")
	}
}

func TestPlaceKeepsLatest(t *testing.T) {
	graph := NewLevel(1, Question{Kind: KindGraph})
	graph = graph.Place(geom.Pt(1, 1)).Place(geom.Pt(2, 2)).Place(geom.Pt(3, 3))
	if got := graph.Answer.Points; len(got) != 2 || got[0] != geom.Pt(2, 2) || got[1] != geom.Pt(3, 3) {
		t.Errorf("graph points = %v, expected [(2, 2) (3, 3)]", got)
	}

	plot := plotLevel().Place(geom.Pt(1, 1)).Place(geom.Pt(-1, 2))
	if got := plot.Answer.Points; len(got) != 1 || got[0] != geom.Pt(-1, 2) {
		t.Errorf("plot points = %v, expected [(-1, 2)]", got)
	}

	if got := NewLevel(1, Question{Kind: KindGradient}).Place(geom.Pt(1, 1)); len(got.Answer.Points) != 0 {
		t.Errorf("gradient level accepted a point")
	}
}

func TestNudgeClamps(t *testing.T) {
	q := Question{Kind: KindMatch, MaxSlope: 3, MaxIntercept: 4}
	l := NewLevel(1, q)
	if l.Answer.Slider != DefaultSlider {
		t.Fatalf("starting slider = %v, expected %v", l.Answer.Slider, DefaultSlider)
	}

	l = l.Nudge(0.1, 0)
	if got := l.Answer.Slider.Slope; got != 2.1 {
		t.Errorf("slope after +0.1 = %v, expected 2.1", got)
	}
	l = l.Nudge(10, 10)
	if got := l.Answer.Slider; got.Slope != 3 || got.Intercept != 4 {
		t.Errorf("slider = %v, expected clamped to (3, 4)", got)
	}
	l = l.Nudge(-10, -10)
	if got := l.Answer.Slider; got.Slope != -3 || got.Intercept != -4 {
		t.Errorf("slider = %v, expected clamped to (-3, -4)", got)
	}
}

func TestExpire(t *testing.T) {
	l := plotLevel().Expire()
	if !l.TimedOut || l.Status != Revealed || !l.Reveal() {
		t.Errorf("Expire() = %+v, expected timed out and revealed", l)
	}
	if l.Last.Verdict != Incorrect {
		t.Errorf("Expire() verdict = %v, expected %v", l.Last.Verdict, Incorrect)
	}

	solved := plotLevel().Place(geom.Pt(3, 4)).Submit(DefaultTolerances()).Expire()
	if solved.TimedOut {
		t.Errorf("Expire() changed a solved level")
	}
}

func TestResetAnswer(t *testing.T) {
	l := NewLevel(1, Question{Kind: KindEquation}).Type(0, '1').Type(1, '2').ResetAnswer()
	if l.Answer.Fields[0] != "" || l.Answer.Fields[1] != "" {
		t.Errorf("fields after reset = %q, expected blank", l.Answer.Fields)
	}
}

func TestUnplace(t *testing.T) {
	q := Question{Kind: KindGraph, Line: geom.NewLine(1, 0)}
	l := NewLevel(1, q).Place(geom.Pt(1, 1)).Place(geom.Pt(2, 2)).Unplace()

	if len(l.Answer.Points) != 1 || l.Answer.Points[0] != geom.Pt(1, 1) {
		t.Errorf("Unplace() points = %v, expected [(1, 1)]", l.Answer.Points)
	}
	if got := NewLevel(1, q).Unplace(); len(got.Answer.Points) != 0 {
		t.Errorf("Unplace() on empty answer = %v, expected none", got.Answer.Points)
	}
}

package quiz

import (
	"math"

	"github.com/vovakirdan/graph-master/internal/geom"
)

// Status is where a level is in its lifecycle.
type Status int

const (
	// Unanswered: the player may still change and submit the answer.
	Unanswered Status = iota
	// Solved: answered correctly. Terminal.
	Solved
	// Revealed: answered wrongly or timed out; the solution is shown. Terminal.
	Revealed
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Revealed:
		return "revealed"
	}
	return "unanswered"
}

// LevelState is the full state of one level. It is a value: every method
// returns a new state and leaves the receiver unchanged.
type LevelState struct {
	Number   int
	Question Question
	Answer   Answer
	Status   Status
	// Submitted is set once the level has a final verdict.
	Submitted bool
	// Checked is set once a counted verdict has been produced. Coordinate
	// labels stay hidden until then.
	Checked  bool
	Attempts int
	Last     Result
	TimedOut bool
}

// NewLevel starts level number with question q.
func NewLevel(number int, q Question) LevelState {
	return LevelState{Number: number, Question: q, Answer: NewAnswer(q)}
}

// Done reports whether the level has reached a terminal status.
func (l LevelState) Done() bool {
	return l.Status != Unanswered
}

// CanAdvance reports whether the player may move on to the next level.
func (l LevelState) CanAdvance() bool {
	return l.Done()
}

// Reveal reports whether coordinate labels may be shown.
func (l LevelState) Reveal() bool {
	return l.Checked
}

// Apply folds a validation result into the level.
//
// Incomplete and vertical results only update the feedback. A correct
// result solves the level. Other counted results end the level with the
// solution revealed, unless the kind lets the player retry.
func Apply(l LevelState, r Result) LevelState {
	if l.Done() {
		return l
	}
	l.Answer = l.Answer.clone()
	l.Last = r
	if !r.Verdict.Counted() {
		return l
	}

	l.Attempts++
	l.Checked = true
	switch {
	case r.Verdict == Correct:
		l.Status = Solved
		l.Submitted = true
	case Describe(l.Question.Kind).RevealOnFail:
		l.Status = Revealed
		l.Submitted = true
	}
	return l
}

// Submit validates the current answer and applies the result.
func (l LevelState) Submit(tol Tolerances) LevelState {
	if l.Done() {
		return l
	}
	return Apply(l, Validate(l.Question, l.Answer, tol))
}

// Expire ends an unanswered level because its timer ran out.
func (l LevelState) Expire() LevelState {
	if l.Done() {
		return l
	}
	l.Answer = l.Answer.clone()
	l.Status = Revealed
	l.Submitted = true
	l.Checked = true
	l.TimedOut = true
	l.Last = Result{Verdict: Incorrect, Message: "Time's up! " + l.Question.Solution() + "."}
	return l
}

// Place puts a point on the grid. Plot questions keep the latest point;
// graph questions keep the latest two.
func (l LevelState) Place(p geom.Point) LevelState {
	want := Describe(l.Question.Kind).Points
	if l.Done() || want == 0 {
		return l
	}
	a := l.Answer.clone()
	a.Points = append(a.Points, p)
	if len(a.Points) > want {
		a.Points = a.Points[len(a.Points)-want:]
	}
	l.Answer = a
	return l
}

// Unplace removes the most recently placed point.
func (l LevelState) Unplace() LevelState {
	if l.Done() || len(l.Answer.Points) == 0 {
		return l
	}
	a := l.Answer.clone()
	a.Points = a.Points[:len(a.Points)-1]
	l.Answer = a
	return l
}

// maxFieldLen bounds how much text fits in an answer box.
const maxFieldLen = 8

// Type appends r to text field i. Only characters that can appear in a
// number are accepted.
func (l LevelState) Type(i int, r rune) LevelState {
	if l.Done() || i < 0 || i >= len(l.Answer.Fields) || !IsNumberRune(r) {
		return l
	}
	if len([]rune(l.Answer.Fields[i])) >= maxFieldLen {
		return l
	}
	a := l.Answer.clone()
	a.Fields[i] += string(r)
	l.Answer = a
	return l
}

// Erase removes the last character of text field i.
func (l LevelState) Erase(i int) LevelState {
	if l.Done() || i < 0 || i >= len(l.Answer.Fields) {
		return l
	}
	runes := []rune(l.Answer.Fields[i])
	if len(runes) == 0 {
		return l
	}
	a := l.Answer.clone()
	a.Fields[i] = string(runes[:len(runes)-1])
	l.Answer = a
	return l
}

// Nudge moves the slider by dm and dc, clamped to the question's range.
// The slope stays on a 0.1 grid and the intercept on whole numbers.
func (l LevelState) Nudge(dm, dc float64) LevelState {
	if l.Done() || !Describe(l.Question.Kind).Slider {
		return l
	}
	q := l.Question
	a := l.Answer.clone()
	m := math.Round((a.Slider.Slope+dm)*10) / 10
	c := math.Round(a.Slider.Intercept + dc)
	a.Slider = geom.NewLine(
		math.Max(-q.MaxSlope, math.Min(q.MaxSlope, m)),
		math.Max(-float64(q.MaxIntercept), math.Min(float64(q.MaxIntercept), c)),
	)
	l.Answer = a
	return l
}

// ResetAnswer clears the player's input.
func (l LevelState) ResetAnswer() LevelState {
	if l.Done() {
		return l
	}
	l.Answer = NewAnswer(l.Question)
	return l
}

// IsNumberRune reports whether r can be part of a typed number.
func IsNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == '/'
}

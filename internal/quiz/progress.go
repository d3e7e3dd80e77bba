package quiz

import "math"

// Scoring holds the constants of the points and XP formulas.
type Scoring struct {
	Base            int     // points for any correct answer
	StreakBonus     int     // extra points per answer in the current streak
	TimeBonusCap    int     // most seconds of remaining time counted as bonus
	MaxCombo        int     // combo multiplier ceiling
	XPFactor        float64 // XP earned per point
	FirstThreshold  int     // XP needed for level 2
	ThresholdGrowth float64 // each threshold is the previous one times this
}

// DefaultScoring returns the standard scoring constants.
func DefaultScoring() Scoring {
	return Scoring{
		Base:            10,
		StreakBonus:     2,
		TimeBonusCap:    30,
		MaxCombo:        5,
		XPFactor:        1.5,
		FirstThreshold:  100,
		ThresholdGrowth: 1.5,
	}
}

// TimeBonus converts the seconds left on the clock into bonus points.
func (s Scoring) TimeBonus(secondsLeft int) int {
	return max(0, min(secondsLeft, s.TimeBonusCap))
}

// Progress tracks a player's results across a session.
type Progress struct {
	Score     int
	XP        int
	Level     int
	Streak    int
	Combo     int
	Solved    int
	Missed    int
	Threshold int // XP needed for the next level

	solveSeconds float64
	scoring      Scoring
}

// Award is what a single correct answer earned.
type Award struct {
	Points  int
	XP      int
	LevelUp bool
}

// NewProgress starts a fresh session.
func NewProgress(s Scoring) Progress {
	if s.MaxCombo < 1 {
		s.MaxCombo = 1
	}
	if s.FirstThreshold < 1 {
		s.FirstThreshold = 1
	}
	if s.ThresholdGrowth < 1 {
		s.ThresholdGrowth = 1
	}
	return Progress{Level: 1, Combo: 1, Threshold: s.FirstThreshold, scoring: s}
}

// Scoring returns the constants this session scores with.
func (p Progress) Scoring() Scoring {
	return p.scoring
}

// RecordCorrect adds a correct answer solved in solveSeconds with
// timeBonus bonus points.
func (p Progress) RecordCorrect(timeBonus int, solveSeconds float64) (Progress, Award) {
	s := p.scoring
	points := int(math.Round(float64(s.Base+p.Streak*s.StreakBonus+timeBonus) * float64(p.Combo)))
	xp := int(math.Round(float64(points) * s.XPFactor))

	p.Score += points
	p.XP += xp
	p.Solved++
	p.Streak++
	p.Combo = min(s.MaxCombo, p.Streak/3+1)
	p.solveSeconds += solveSeconds

	award := Award{Points: points, XP: xp}
	for p.XP >= p.Threshold {
		p.XP -= p.Threshold
		p.Level++
		p.Threshold = int(math.Round(float64(p.Threshold) * s.ThresholdGrowth))
		award.LevelUp = true
	}
	return p, award
}

// RecordMiss adds a wrong or partial answer. The streak and combo reset.
func (p Progress) RecordMiss() Progress {
	p.Missed++
	p.Streak = 0
	p.Combo = 1
	return p
}

// AverageSeconds is the mean solve time of correct answers.
func (p Progress) AverageSeconds() float64 {
	if p.Solved == 0 {
		return 0
	}
	return p.solveSeconds / float64(p.Solved)
}

// Accuracy is the percentage of counted answers that were correct.
func (p Progress) Accuracy() int {
	total := p.Solved + p.Missed
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(p.Solved) * 100 / float64(total)))
}

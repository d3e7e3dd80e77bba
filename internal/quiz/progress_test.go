package quiz

import (
	"testing"

	"github.com/vovakirdan/graph-master/internal/geom"
)

func TestRecordCorrect(t *testing.T) {
	p := NewProgress(DefaultScoring())

	p, award := p.RecordCorrect(0, 4)
	if award.Points != 10 || award.XP != 15 {
		t.Errorf("first award = %+v, expected 10 points and 15 XP", award)
	}

	p, award = p.RecordCorrect(5, 2)
	// (10 + 1*2 + 5) * 1
	if award.Points != 17 {
		t.Errorf("second award points = %d, expected 17", award.Points)
	}

	p, _ = p.RecordCorrect(0, 6)
	if p.Streak != 3 || p.Combo != 2 {
		t.Errorf("streak = %d combo = %d, expected 3 and 2", p.Streak, p.Combo)
	}

	_, award = p.RecordCorrect(0, 0)
	// (10 + 3*2) * 2
	if award.Points != 32 {
		t.Errorf("combo award points = %d, expected 32", award.Points)
	}

	if got := p.AverageSeconds(); got != 4 {
		t.Errorf("AverageSeconds() = %v, expected 4", got)
	}
}

func TestComboCap(t *testing.T) {
	p := NewProgress(DefaultScoring())
	for i := 0; i < 30; i++ {
		p, _ = p.RecordCorrect(0, 1)
	}
	if p.Combo != 5 {
		t.Errorf("Combo = %d, expected cap 5", p.Combo)
	}
}

func TestLevelUp(t *testing.T) {
	s := DefaultScoring()
	p := NewProgress(s)

	// 10+0+30 = 40 points, 60 XP
	p, award := p.RecordCorrect(30, 1)
	if award.LevelUp || p.Level != 1 {
		t.Fatalf("levelled up too early: %+v", p)
	}
	// (10+2+30) = 42 points, 63 XP -> 123 XP total
	p, award = p.RecordCorrect(30, 1)
	if !award.LevelUp || p.Level != 2 {
		t.Fatalf("Level = %d, expected 2", p.Level)
	}
	if p.XP != 23 || p.Threshold != 150 {
		t.Errorf("XP = %d threshold = %d, expected 23 and 150", p.XP, p.Threshold)
	}
}

func TestRecordMissResetsStreak(t *testing.T) {
	p := NewProgress(DefaultScoring())
	for i := 0; i < 4; i++ {
		p, _ = p.RecordCorrect(0, 1)
	}
	p = p.RecordMiss()

	if p.Streak != 0 || p.Combo != 1 {
		t.Errorf("streak = %d combo = %d, expected 0 and 1", p.Streak, p.Combo)
	}
	if got := p.Accuracy(); got != 80 {
		t.Errorf("Accuracy() = %d, expected 80", got)
	}
}

func TestTimeBonus(t *testing.T) {
	s := DefaultScoring()
	tests := []struct {
		left, expected int
	}{
		{-3, 0},
		{0, 0},
		{12, 12},
		{45, 30},
	}
	for _, tt := range tests {
		if got := s.TimeBonus(tt.left); got != tt.expected {
			t.Errorf("TimeBonus(%d) = %d, expected %d", tt.left, got, tt.expected)
		}
	}
}

func TestHints(t *testing.T) {
	tests := []struct {
		name     string
		level    LevelState
		expected string
	}{
		{
			"plot",
			NewLevel(1, Question{Kind: KindPlot, Target: geom.Pt(-2, 3)}),
			"Start at the origin. Go left along x, then up along y.",
		},
		{
			"table",
			NewLevel(1, Question{Kind: KindTable, Line: geom.NewLine(2, -1), Xs: []int{-2, 0, 2}}),
			"Put each x into y = 2x - 1. For x = -2 that is 2 × -2 - 1.",
		},
		{
			"match",
			NewLevel(1, Question{Kind: KindMatch, Line: geom.NewLine(3, -4), MaxSlope: 5, MaxIntercept: 10}),
			"Increase slope and decrease intercept.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hint(tt.level); got != tt.expected {
				t.Errorf("Hint() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{750, 0.5},
		{1500, 1},
		{9000, 1},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(750, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(750) from 0.5 = %v, expected 0.75", got)
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Errorf("IsEnabled() = true after SetEnabled(false)")
	}
	if got := d.Level(1500, 0); got != 0.5 {
		t.Errorf("Level() disabled = %v, expected initial 0.5", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	if got := d.Bound(8, 0, 0); got != 8 {
		t.Errorf("Bound(8) at start = %d, expected 8", got)
	}
	if got := d.Bound(8, 1500, 0); got != 10 {
		t.Errorf("Bound(8) at max = %d, expected 10", got)
	}
	if got := d.BoundF(4, 1500, 0); got != 5 {
		t.Errorf("BoundF(4) at max = %v, expected 5", got)
	}
	if got := d.TimerSeconds(60, 1500, 0); got != 40 {
		t.Errorf("TimerSeconds(60) at max = %d, expected 40", got)
	}
	if got := d.TimerSeconds(0, 1500, 0); got != 0 {
		t.Errorf("TimerSeconds(0) = %d, expected 0 (disabled)", got)
	}
	if got := d.TimerSeconds(15, 1500, 0); got != 10 {
		t.Errorf("TimerSeconds(15) at max = %d, expected floor 10", got)
	}
}

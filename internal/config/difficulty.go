package config

import "math"

// DifficultyManager calculates question bounds and timers based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Bound widens a question bound as difficulty increases.
// At max difficulty it grows by BoundsGrowth of its base value.
func (d *DifficultyManager) Bound(base int, score int, ticks int) int {
	level := d.Level(score, ticks)
	return base + int(math.Round(level*d.cfg.Scaling.BoundsGrowth*float64(base)))
}

// BoundF is Bound for fractional limits such as the slider slope range.
func (d *DifficultyManager) BoundF(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return base * (1.0 + level*d.cfg.Scaling.BoundsGrowth)
}

// TimerSeconds shortens the level countdown as difficulty increases.
// A base of 0 (no timer) stays 0.
func (d *DifficultyManager) TimerSeconds(base int, score int, ticks int) int {
	if base <= 0 {
		return 0
	}
	level := d.Level(score, ticks)
	result := base - int(level*float64(d.cfg.Scaling.TimerReduction))
	if result < 10 { // Minimum time to read a question
		result = min(base, 10)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

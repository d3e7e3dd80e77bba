// Package config provides YAML-based trainer configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// GraphMasterConfig contains all configuration for the trainer.
type GraphMasterConfig struct {
	Session    SessionConfig    `yaml:"session"`
	View       ViewConfig       `yaml:"view"`
	Bounds     BoundsConfig     `yaml:"bounds"`
	Tolerances ToleranceConfig  `yaml:"tolerances"`
	Timer      TimerConfig      `yaml:"timer"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SessionConfig defines the length and pacing of a session.
type SessionConfig struct {
	Levels       int     `yaml:"levels"`        // Levels per session
	AdvanceDelay float64 `yaml:"advance_delay"` // Seconds before moving on after a correct answer
}

// ViewConfig defines how the grid is drawn.
type ViewConfig struct {
	CellsPerUnit float64 `yaml:"cells_per_unit"` // Terminal columns per grid unit at zoom 1
	Aspect       float64 `yaml:"aspect"`         // Row height relative to column width per unit
	ShowGrid     bool    `yaml:"show_grid"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
	ZoomStep     float64 `yaml:"zoom_step"`
	ExportScale  float64 `yaml:"export_scale"` // Pixels per grid unit in PNG export
	ExportSize   int     `yaml:"export_size"`  // PNG width and height in pixels
}

// BoundsConfig limits generated numbers at the easiest difficulty.
type BoundsConfig struct {
	MaxX         int     `yaml:"max_x"`
	MaxY         int     `yaml:"max_y"`
	MaxIntercept int     `yaml:"max_intercept"`
	MaxSlope     float64 `yaml:"max_slope"`
}

// ToleranceConfig defines how close an answer must be.
type ToleranceConfig struct {
	PointPolicy    string  `yaml:"point_policy"` // "exact" or "distance"
	PointDistance  float64 `yaml:"point_distance"`
	Slope          float64 `yaml:"slope"`
	Intercept      float64 `yaml:"intercept"`
	GraphSlope     float64 `yaml:"graph_slope"`
	GraphIntercept float64 `yaml:"graph_intercept"`
	MatchSlope     float64 `yaml:"match_slope"`
}

// TimerConfig defines the per-level countdown.
type TimerConfig struct {
	Seconds      int     `yaml:"seconds"`       // 0 disables the countdown
	TimeoutDelay float64 `yaml:"timeout_delay"` // Seconds the solution shows after time runs out
}

// ScoringConfig defines points, XP and level thresholds.
type ScoringConfig struct {
	Base            int     `yaml:"base"`
	StreakBonus     int     `yaml:"streak_bonus"`
	TimeBonusCap    int     `yaml:"time_bonus_cap"`
	MaxCombo        int     `yaml:"max_combo"`
	XPFactor        float64 `yaml:"xp_factor"`
	FirstThreshold  int     `yaml:"first_threshold"`
	ThresholdGrowth float64 `yaml:"threshold_growth"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BoundsGrowth   float64 `yaml:"bounds_growth"`   // Fraction added to bounds at max difficulty
	TimerReduction int     `yaml:"timer_reduction"` // Seconds removed from the timer at max difficulty
}

// Validate checks that every value is usable.
func (c GraphMasterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Session.Levels > 0, "session.levels must be positive, got %d", c.Session.Levels)
	check(c.Session.AdvanceDelay >= 0, "session.advance_delay must not be negative")

	v := c.View
	check(v.CellsPerUnit > 0, "view.cells_per_unit must be positive, got %v", v.CellsPerUnit)
	check(v.Aspect > 0, "view.aspect must be positive, got %v", v.Aspect)
	check(v.MinZoom > 0 && v.MinZoom <= v.MaxZoom, "view zoom range [%v, %v] is inverted or empty", v.MinZoom, v.MaxZoom)
	check(v.ZoomStep > 0, "view.zoom_step must be positive, got %v", v.ZoomStep)
	check(v.ExportScale > 0, "view.export_scale must be positive, got %v", v.ExportScale)
	check(v.ExportSize > 0, "view.export_size must be positive, got %d", v.ExportSize)

	b := c.Bounds
	check(b.MaxX > 0 && b.MaxY > 0, "bounds.max_x and bounds.max_y must be positive")
	check(b.MaxIntercept >= 0, "bounds.max_intercept must not be negative")
	check(b.MaxSlope > 0, "bounds.max_slope must be positive, got %v", b.MaxSlope)

	t := c.Tolerances
	check(t.PointPolicy == "exact" || t.PointPolicy == "distance",
		"tolerances.point_policy must be exact or distance, got %q", t.PointPolicy)
	for name, val := range map[string]float64{
		"point_distance":  t.PointDistance,
		"slope":           t.Slope,
		"intercept":       t.Intercept,
		"graph_slope":     t.GraphSlope,
		"graph_intercept": t.GraphIntercept,
		"match_slope":     t.MatchSlope,
	} {
		check(val > 0, "tolerances.%s must be positive, got %v", name, val)
	}

	check(c.Timer.Seconds >= 0, "timer.seconds must not be negative")
	check(c.Scoring.MaxCombo >= 1, "scoring.max_combo must be at least 1")
	check(c.Scoring.FirstThreshold > 0, "scoring.first_threshold must be positive")
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1,
		"difficulty.initial_level must be within [0, 1], got %v", c.Difficulty.InitialLevel)

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name is DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, name)
}

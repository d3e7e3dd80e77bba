package config

import (
	_ "embed"
)

//go:embed defaults/graphmaster.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() GraphMasterConfig {
	return GraphMasterConfig{
		Session: SessionConfig{
			Levels:       10,
			AdvanceDelay: 2.0,
		},
		View: ViewConfig{
			CellsPerUnit: 4,
			Aspect:       0.5,
			ShowGrid:     true,
			MinZoom:      0.5,
			MaxZoom:      2.0,
			ZoomStep:     0.25,
			ExportScale:  40,
			ExportSize:   600,
		},
		Bounds: BoundsConfig{
			MaxX:         8,
			MaxY:         5,
			MaxIntercept: 4,
			MaxSlope:     5,
		},
		Tolerances: ToleranceConfig{
			PointPolicy:    "exact",
			PointDistance:  1.5,
			Slope:          0.05,
			Intercept:      0.05,
			GraphSlope:     0.15,
			GraphIntercept: 1.0,
			MatchSlope:     0.1,
		},
		Timer: TimerConfig{
			Seconds:      60,
			TimeoutDelay: 2.0,
		},
		Scoring: ScoringConfig{
			Base:            10,
			StreakBonus:     2,
			TimeBonusCap:    30,
			MaxCombo:        5,
			XPFactor:        1.5,
			FirstThreshold:  100,
			ThresholdGrowth: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				BoundsGrowth:   0.25,
				TimerReduction: 20,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing a starter file.
func DefaultYAML() []byte {
	return defaultYAML
}

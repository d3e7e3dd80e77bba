package graphmaster

import (
	"github.com/vovakirdan/graph-master/internal/config"
	"github.com/vovakirdan/graph-master/internal/quiz"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// loadConfig reads the trainer config, falling back to defaults, and
// applies preset, or the CLI preset when preset is empty.
func loadConfig(preset config.DifficultyPreset) config.GraphMasterConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

func tolerances(c config.ToleranceConfig) quiz.Tolerances {
	return quiz.Tolerances{
		PointPolicy:    quiz.PointPolicy(c.PointPolicy),
		PointDistance:  c.PointDistance,
		Slope:          c.Slope,
		Intercept:      c.Intercept,
		GraphSlope:     c.GraphSlope,
		GraphIntercept: c.GraphIntercept,
		MatchSlope:     c.MatchSlope,
	}
}

func scoring(c config.ScoringConfig) quiz.Scoring {
	return quiz.Scoring{
		Base:            c.Base,
		StreakBonus:     c.StreakBonus,
		TimeBonusCap:    c.TimeBonusCap,
		MaxCombo:        c.MaxCombo,
		XPFactor:        c.XPFactor,
		FirstThreshold:  c.FirstThreshold,
		ThresholdGrowth: c.ThresholdGrowth,
	}
}

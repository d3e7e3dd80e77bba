package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "graphmaster.yaml"

// Load loads the trainer configuration.
// Search order: customPath -> ~/.graphmaster/configs/graphmaster.yaml ->
// ./configs/graphmaster.yaml -> embedded default -> hard-coded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (GraphMasterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GraphMasterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GraphMasterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files there are skipped.
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (GraphMasterConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GraphMasterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GraphMasterConfig{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".graphmaster", "configs", FileName)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GraphMasterConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust checking and pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Tolerances.PointPolicy = "distance"
		if cfg.Timer.Seconds > 0 {
			cfg.Timer.Seconds += 30
		}
	case DifficultyHard:
		cfg.Tolerances.PointPolicy = "exact"
		cfg.Scoring.TimeBonusCap += 15
	}
}

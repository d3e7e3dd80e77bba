package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GraphMasterConfig)
	}{
		{"zero scale", func(c *GraphMasterConfig) { c.View.CellsPerUnit = 0 }},
		{"negative tolerance", func(c *GraphMasterConfig) { c.Tolerances.Slope = -0.05 }},
		{"zero graph tolerance", func(c *GraphMasterConfig) { c.Tolerances.GraphIntercept = 0 }},
		{"inverted zoom", func(c *GraphMasterConfig) { c.View.MinZoom, c.View.MaxZoom = 2, 0.5 }},
		{"unknown policy", func(c *GraphMasterConfig) { c.Tolerances.PointPolicy = "close" }},
		{"no levels", func(c *GraphMasterConfig) { c.Session.Levels = 0 }},
		{"empty bounds", func(c *GraphMasterConfig) { c.Bounds.MaxX = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("session:\n  levels: 3\ntolerances:\n  point_policy: distance\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.Levels != 3 {
		t.Errorf("Session.Levels = %d, expected 3", cfg.Session.Levels)
	}
	if cfg.Tolerances.PointPolicy != "distance" {
		t.Errorf("PointPolicy = %q, expected distance", cfg.Tolerances.PointPolicy)
	}
	if cfg.Tolerances.Slope != 0.05 {
		t.Errorf("unset Slope = %v, expected default 0.05", cfg.Tolerances.Slope)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("Load(missing) error = nil, expected an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("view:\n  cells_per_unit: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(bad) error = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("timer:\n  seconds: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Timer.Seconds != 0 {
		t.Errorf("Timer.Seconds = %d, expected 0 from ./configs", cfg.Timer.Seconds)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		initial  float64
		policy   string
		timerSec int
	}{
		{DifficultyEasy, true, 0.0, "distance", 90},
		{DifficultyNormal, true, 0.3, "exact", 60},
		{DifficultyHard, true, 0.7, "exact", 60},
		{DifficultyFixed, false, 0.0, "exact", 60},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
			if cfg.Tolerances.PointPolicy != tt.policy {
				t.Errorf("PointPolicy = %q, expected %q", cfg.Tolerances.PointPolicy, tt.policy)
			}
			if cfg.Timer.Seconds != tt.timerSec {
				t.Errorf("Timer.Seconds = %d, expected %d", cfg.Timer.Seconds, tt.timerSec)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = %q, %v, expected hard", p, err)
	}
	if _, err := ParsePreset("brutal"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(\"brutal\") error = %v, expected ErrInvalid", err)
	}
}

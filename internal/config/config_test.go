package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SkillfallConfig
	if err := yaml.Unmarshal(GetDefaultYAML("skillfall"), &cfg); err != nil {
		t.Fatalf("embedded skillfall.yaml does not parse: %v", err)
	}

	hard := DefaultSkillfallConfig()
	if cfg.Board != hard.Board {
		t.Errorf("board = %+v, expected %+v", cfg.Board, hard.Board)
	}
	if cfg.Generator != hard.Generator {
		t.Errorf("generator = %+v, expected %+v", cfg.Generator, hard.Generator)
	}
	if cfg.Evaluator != hard.Evaluator {
		t.Errorf("evaluator = %+v, expected %+v", cfg.Evaluator, hard.Evaluator)
	}
	if cfg.Gameplay != hard.Gameplay {
		t.Errorf("gameplay = %+v, expected %+v", cfg.Gameplay, hard.Gameplay)
	}
}

func TestEmbeddedLabelsParse(t *testing.T) {
	var cfg LabelsConfig
	if err := yaml.Unmarshal(GetDefaultYAML("labels"), &cfg); err != nil {
		t.Fatalf("embedded labels.yaml does not parse: %v", err)
	}
	if len(cfg.Labels) == 0 {
		t.Fatal("embedded label pool is empty")
	}
	inPool := make(map[string]bool)
	for _, l := range cfg.Labels {
		if l == "" {
			t.Error("embedded pool contains an empty label")
		}
		inPool[l] = true
	}
	for _, l := range cfg.NoRepeat {
		if !inPool[l] {
			t.Errorf("no-repeat label %q is not in the pool", l)
		}
	}
}

func TestLoadLabelsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.yaml")
	content := []byte("labels:\n  - alpha\n  - \"\"\n  - beta\nno_repeat:\n  - beta\n  - gamma\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLabels(path)
	if err != nil {
		t.Fatalf("LoadLabels: %v", err)
	}

	// Empty entries dropped, no-repeat restricted to the pool
	if len(cfg.Labels) != 2 || cfg.Labels[0] != "alpha" || cfg.Labels[1] != "beta" {
		t.Errorf("labels = %v, expected [alpha beta]", cfg.Labels)
	}
	if len(cfg.NoRepeat) != 1 || cfg.NoRepeat[0] != "beta" {
		t.Errorf("no-repeat = %v, expected [beta]", cfg.NoRepeat)
	}
}

func TestLoadLabelsMissingFile(t *testing.T) {
	if _, err := LoadLabels("/nonexistent/labels.yaml"); err == nil {
		t.Error("expected error for missing custom labels file")
	}
}

func TestApplySkillfallPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		gravityTicks int
	}{
		{DifficultyEasy, true, 18},
		{DifficultyNormal, true, 12},
		{DifficultyHard, true, 8},
		{DifficultyFixed, false, 12},
	}

	for _, tc := range tests {
		cfg := DefaultSkillfallConfig()
		ApplySkillfallPreset(&cfg, tc.preset)

		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("%s: enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
		if cfg.Gameplay.GravityTicks != tc.gravityTicks {
			t.Errorf("%s: gravity ticks = %d, expected %d", tc.preset, cfg.Gameplay.GravityTicks, tc.gravityTicks)
		}
	}
}

func TestGravityInterval(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{GravityReduction: 8},
	}
	d := NewDifficultyManager(cfg)

	if got := d.GravityInterval(12, 0, 0); got != 12 {
		t.Errorf("interval at score 0 = %d, expected 12", got)
	}
	if got := d.GravityInterval(12, 500, 0); got != 8 {
		t.Errorf("interval at half progression = %d, expected 8", got)
	}
	if got := d.GravityInterval(12, 1000, 0); got != 4 {
		t.Errorf("interval at max progression = %d, expected 4", got)
	}

	// The interval never drops below the playable minimum
	if got := d.GravityInterval(3, 1000, 0); got != 2 {
		t.Errorf("clamped interval = %d, expected 2", got)
	}
}

func TestDifficultyLevelFixed(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(10000, 0); got != 0.4 {
		t.Errorf("disabled progression level = %v, expected 0.4", got)
	}
}

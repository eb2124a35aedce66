package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkillfall loads the game configuration.
// Search order: customPath -> ~/.skillfall/configs/skillfall.yaml -> ./configs/skillfall.yaml -> embedded default
func LoadSkillfall(customPath string) (SkillfallConfig, error) {
	var cfg SkillfallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skillfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/skillfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkillfallYAML, &cfg); err != nil {
		return DefaultSkillfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadLabels loads the label pool.
// Search order: customPath -> ~/.skillfall/configs/labels.yaml -> ./configs/labels.yaml -> embedded default
func LoadLabels(customPath string) (LabelsConfig, error) {
	var cfg LabelsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read labels %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse labels %s: %w", customPath, err)
		}
		return sanitizeLabels(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("labels.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitizeLabels(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/labels.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitizeLabels(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLabelsYAML, &cfg); err != nil {
		return DefaultLabelsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitizeLabels(cfg), nil
}

// sanitizeLabels drops empty entries and no-repeat entries that are not
// part of the pool.
func sanitizeLabels(cfg LabelsConfig) LabelsConfig {
	var labels []string
	inPool := make(map[string]bool)
	for _, l := range cfg.Labels {
		if l == "" {
			continue
		}
		labels = append(labels, l)
		inPool[l] = true
	}

	var noRepeat []string
	for _, l := range cfg.NoRepeat {
		if inPool[l] {
			noRepeat = append(noRepeat, l)
		}
	}
	return LabelsConfig{Labels: labels, NoRepeat: noRepeat}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillfall", "configs", filename)
}

// ApplySkillfallPreset modifies the config based on a difficulty preset.
func ApplySkillfallPreset(cfg *SkillfallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gravity pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.GravityTicks = 18
	case DifficultyHard:
		cfg.Gameplay.GravityTicks = 8
	}
}

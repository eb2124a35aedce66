// Package config provides YAML-based game configuration loading and
// difficulty management for the skillfall platform.
package config

// SkillfallConfig contains all configuration for a Skillfall session.
type SkillfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Evaluator  EvaluatorConfig  `yaml:"evaluator"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GeneratorConfig defines piece generation parameters.
type GeneratorConfig struct {
	QueueDepth int    `yaml:"queue_depth"`
	Mode       string `yaml:"mode"` // "classic" or "steady"
}

// EvaluatorConfig defines the placement suggestion coefficients.
type EvaluatorConfig struct {
	Coverage  float64 `yaml:"coverage"`
	Flatness  float64 `yaml:"flatness"`
	Future    float64 `yaml:"future"`
	Height    float64 `yaml:"height"`
	Edge      float64 `yaml:"edge"`
	Lines     float64 `yaml:"lines"`
	Lookahead int     `yaml:"lookahead"`
}

// GameplayConfig defines session-level gameplay parameters.
type GameplayConfig struct {
	GravityTicks int  `yaml:"gravity_ticks"` // ticks between gravity steps at level 0
	LineClear    bool `yaml:"line_clear"`
	Assist       bool `yaml:"assist"` // placement overlay on by default
	PointsPiece  int  `yaml:"points_piece"`
	PointsLine   int  `yaml:"points_line"`
}

// LabelsConfig is the label pool fed to the scheduler. NoRepeat entries
// must also appear in Labels; unknown entries are dropped at load time.
type LabelsConfig struct {
	Labels   []string `yaml:"labels"`
	NoRepeat []string `yaml:"no_repeat"`
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
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Gravity speedup at max difficulty
	GravityReduction int     `yaml:"gravity_reduction"` // Ticks shaved off the gravity interval at max difficulty
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

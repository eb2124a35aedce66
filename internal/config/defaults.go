package config

import (
	_ "embed"
)

//go:embed defaults/skillfall.yaml
var defaultSkillfallYAML []byte

//go:embed defaults/labels.yaml
var defaultLabelsYAML []byte

// DefaultSkillfallConfig returns the default Skillfall configuration.
func DefaultSkillfallConfig() SkillfallConfig {
	return SkillfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 18,
		},
		Generator: GeneratorConfig{
			QueueDepth: 7,
			Mode:       "classic",
		},
		Evaluator: EvaluatorConfig{
			Coverage:  10,
			Flatness:  5,
			Future:    3,
			Height:    2,
			Edge:      1,
			Lines:     50,
			Lookahead: 3,
		},
		Gameplay: GameplayConfig{
			GravityTicks: 12,
			LineClear:    false,
			Assist:       false,
			PointsPiece:  10,
			PointsLine:   100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GravityReduction: 8,
			},
		},
	}
}

// DefaultLabelsConfig returns the built-in label pool.
func DefaultLabelsConfig() LabelsConfig {
	return LabelsConfig{
		Labels: []string{
			"golang", "python", "rust", "kubernetes", "terraform",
			"data analytics", "unit testing", "code review", "system design",
			"error handling", "load balancing", "query tuning", "api design",
			"pair programming", "capacity planning", "incident response",
			"schema migration", "cache invalidation", "log aggregation",
			"chaos engineering", "release management", "threat modeling",
			"service discovery", "dependency injection", "garbage collection",
			"problem-solving", "self-organization", "decision-making",
			"public speaking", "conflict resolution", "time management",
			"continuous integration", "observability", "refactoring",
			"postgres", "redis", "kafka", "grpc", "graphql", "websockets",
		},
		NoRepeat: []string{
			"public speaking", "conflict resolution", "decision-making",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML by name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "skillfall":
		return defaultSkillfallYAML
	case "labels":
		return defaultLabelsYAML
	default:
		return nil
	}
}

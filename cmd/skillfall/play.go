package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehub/skillfall/internal/config"
	"github.com/arcadehub/skillfall/internal/core"
	"github.com/arcadehub/skillfall/internal/games/skillfall"
	"github.com/arcadehub/skillfall/internal/platform/tui"
	"github.com/arcadehub/skillfall/internal/registry"
	"github.com/arcadehub/skillfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLabels     string
	flagLabelsJSON string
	flagNoRepeat   []string
	flagAssist     bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Skillfall",
	Long: `Start playing Skillfall. Mode is "classic" (default) or "steady".
Steady mode never deals the diagonal S and Z pieces.

Controls:
  Left/Right/A/D - Move piece
  Up/W           - Rotate
  Down/S         - Soft drop
  Space          - Hard drop
  X              - Skip piece
  E              - Exchange shape
  H              - Toggle placement assist
  P              - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slow gravity, progresses with score
  normal - Default gravity, progresses with score
  hard   - Fast gravity, progresses with score
  fixed  - No progression, stays at config's initial level

Examples:
  skillfall play
  skillfall play steady
  skillfall play --difficulty hard --assist
  skillfall play --labels ./my-labels.yaml
  skillfall play --labels-json '["public speaking","unit testing"]'
  skillfall play --config ./my-skillfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLabels, "labels", "", "Path to custom labels YAML")
	playCmd.Flags().StringVar(&flagLabelsJSON, "labels-json", "", "Label pool as a JSON string array (overrides --labels)")
	playCmd.Flags().StringSliceVar(&flagNoRepeat, "no-repeat", nil, "Labels that must never repeat within a cycle")
	playCmd.Flags().BoolVar(&flagAssist, "assist", false, "Enable the placement suggestion overlay")
}

// gameIDForMode maps a mode argument to a registered game ID.
func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", "classic", "skillfall":
		return "skillfall", nil
	case "steady", "skillfall_steady":
		return "skillfall_steady", nil
	}
	return "", fmt.Errorf("unknown mode %q (want classic or steady)", mode)
}

// applyGameFlags pushes CLI overrides into the game package before creation.
func applyGameFlags(cmd *cobra.Command) error {
	skillfall.SetConfigPath(flagConfig)
	skillfall.SetLabelsPath(flagLabels)
	skillfall.SetDifficultyPreset(flagDifficulty)

	if flagLabelsJSON != "" {
		var pool []string
		if err := json.Unmarshal([]byte(flagLabelsJSON), &pool); err != nil {
			return fmt.Errorf("invalid --labels-json: %w", err)
		}
		skillfall.SetLabels(pool, flagNoRepeat)
	} else if len(flagNoRepeat) > 0 {
		skillfall.SetLabels(nil, flagNoRepeat)
	}

	if cmd.Flags().Changed("assist") {
		skillfall.SetAssist(flagAssist)
	}
	return nil
}

// resolveMode picks the session mode: the positional argument when one
// is given, otherwise the generator mode from the loaded config.
func resolveMode(args []string, configPath string) string {
	if len(args) > 0 {
		return args[0]
	}
	gameCfg, err := config.LoadSkillfall(configPath)
	if err != nil {
		return ""
	}
	return gameCfg.Generator.Mode
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := resolveMode(args, flagConfig)

	gameID, err := gameIDForMode(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'skillfall list' to see available modes.")
		os.Exit(1)
	}

	if applyErr := applyGameFlags(cmd); applyErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", applyErr)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// skillfall is a falling-block puzzle for the terminal where every piece
// carries skill labels you commit to the board.
//
// Usage:
//
//	skillfall list              - List available modes
//	skillfall play [mode]       - Play a mode (classic by default)
//	skillfall menu              - Interactive mode picker
//	skillfall serve             - Start SSH server for remote play
//	skillfall scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skillfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/arcadehub/skillfall/internal/games/skillfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillfall",
	Short: "Skillfall - A falling-block puzzle with skill labels",
	Long: `Skillfall is a terminal puzzle where falling block faces carry skill
labels. Place pieces, clear lines, and watch which skills you lock in.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  skillfall list
  skillfall play
  skillfall play steady --difficulty easy
  skillfall menu
  skillfall serve --ssh :2222
  skillfall scores skillfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skillfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadehub/skillfall/internal/registry"
	"github.com/arcadehub/skillfall/internal/storage"
)

var flagSessions bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

Examples:
  skillfall scores skillfall
  skillfall scores skillfall_steady
  skillfall scores skillfall --sessions`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Also show recent session details")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skillfall list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skillfall play' to set the first high score!\n")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  |  Sessions: %d  |  Avg: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	if !flagSessions {
		return
	}

	// Show recent session details
	sessions, err := store.RecentSessions(gameID, 10)
	if err != nil || len(sessions) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent sessions:")
	fmt.Printf("  %-10s  %-7s  %-6s  %-6s  %-8s  %s\n",
		"Score", "Pieces", "Lines", "Skips", "Duration", "Date")
	for _, s := range sessions {
		fmt.Printf("  %-10d  %-7d  %-6d  %-6d  %-8s  %s\n",
			s.Score, s.Pieces, s.Lines, s.Skips,
			fmt.Sprintf("%ds", s.Duration),
			s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

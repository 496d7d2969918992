package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo"
	"github.com/vovakirdan/cosmo-arcade/internal/platform/tui"
	"github.com/vovakirdan/cosmo-arcade/internal/registry"
	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and the play statistics.

Examples:
  cosmo scores
  cosmo scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded score")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cur.cfg.Saves.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(cosmo.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(cosmo.GameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(cosmo.GameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cosmo play' to set the first high score!")
		return nil
	}

	fmt.Println(tui.ScoreTable(scores, 60, len(scores)+1).View())

	stats, err := store.GetGameStats(cosmo.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.0f   Furthest level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	return nil
}

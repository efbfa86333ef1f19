package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/games/catjump"
	"github.com/vovakirdan/catjump/internal/platform/tui"
	"github.com/vovakirdan/catjump/internal/registry"
	"github.com/vovakirdan/catjump/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresMode        string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs of a difficulty mode.

Examples:
  catjump scores
  catjump scores --mode hard --limit 20
  catjump scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "normal", "Difficulty mode: easy, normal, hard")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse all modes in a table view")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset := config.ParsePreset(flagScoresMode)
	if preset == "" {
		return fmt.Errorf("unknown mode %q (want easy, normal or hard)", flagScoresMode)
	}
	gameID := catjump.ModeID(preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height, gameID)
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'catjump play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-16s  %s\n", "Rank", "Score", "Level", "Eaten", "Skin", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-16s  %s\n", "----", "-----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		skin := "-"
		if entry.Skin != "" {
			skin = catjump.SkinOrDefault(entry.Skin).Name
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-16s  %s\n",
			i+1, entry.Score, entry.Level, entry.Eaten, skin, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GetGameStats(gameID); statsErr == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f  Best level: %d  Eaten: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalEaten)
	}
	return nil
}

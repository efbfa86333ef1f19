package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catjump/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded run",
	Long: `Re-simulate a replay file from its seed, tunables and inputs, and
check that the run ends exactly as recorded.

Examples:
  catjump sim --runs 1 --record run.cjr
  catjump replay run.cjr`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Replay %s\n", args[0])
	fmt.Printf("  mode %s  seed %d  ticks %d  recorded %s\n",
		rec.Mode, rec.Seed, rec.Ticks(), rec.RecordedAt.Format("2006-01-02 15:04"))

	got, err := replay.Verify(rec)
	if errors.Is(err, replay.ErrMismatch) {
		fmt.Printf("  MISMATCH: recorded score %d at tick %d, replayed score %d at tick %d\n",
			rec.Final.Score, rec.Final.Tick, got.Score, got.Tick)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("  OK: %s at tick %d, score %d, level %d, eaten %d\n",
		got.Phase, got.Tick, got.Score, got.Level, got.Eaten)
	return nil
}

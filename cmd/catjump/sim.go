package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/games/catjump"
	"github.com/vovakirdan/catjump/internal/games/catjump/sim"
	"github.com/vovakirdan/catjump/internal/replay"
)

var (
	flagSimRuns       int
	flagSimTicks      int
	flagSimSeedBase   int64
	flagSimSeedStep   int64
	flagSimRecord     string
	flagSimConfig     string
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot simulations",
	Long: `Play runs without a terminal, steered by a simple autopilot, and
print a report. Useful for balancing tunables.

With --record each run is saved as a replay file; for several runs the
run index is appended to the file name.

Examples:
  catjump sim
  catjump sim --runs 50 --ticks 30000 --difficulty hard
  catjump sim --seed-base 42 --record run.cjr
  catjump sim --config ./my-catjump.yaml`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Tick limit per run")
	simCmd.Flags().Int64Var(&flagSimSeedBase, "seed-base", 1, "Seed of the first run")
	simCmd.Flags().Int64Var(&flagSimSeedStep, "seed-step", 1, "Seed increment between runs")
	simCmd.Flags().StringVar(&flagSimRecord, "record", "", "Save each run as a replay file")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom tunables YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimRuns <= 0 || flagSimTicks <= 0 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}
	preset := config.ParsePreset(flagSimDifficulty)
	if preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagSimDifficulty)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagSimConfig)
	if err != nil {
		logger.Warn("using default tunables", "error", err)
	}
	config.ApplyPreset(&cfg, preset)
	mode := catjump.ModeID(preset)

	fmt.Printf("  %-4s  %-20s  %-7s  %-8s  %-5s  %-5s  %s\n", "Run", "Seed", "Ticks", "Score", "Level", "Eaten", "Result")
	fmt.Printf("  %-4s  %-20s  %-7s  %-8s  %-5s  %-5s  %s\n", "---", "----", "-----", "-----", "-----", "-----", "------")

	var totalScore, bestScore, totalEaten, deaths int
	for i := range flagSimRuns {
		seed := flagSimSeedBase + int64(i)*flagSimSeedStep

		var rec *replay.Recorder
		var record func(int)
		if flagSimRecord != "" {
			rec, err = replay.NewRecorder(cfg, mode, seed, 0)
			if err != nil {
				return err
			}
			record = rec.Add
		}

		final := catjump.Simulate(cfg, seed, flagSimTicks, record)

		result := catjump.Outcome(final)
		if final.GameOver {
			deaths++
		}
		fmt.Printf("  %-4d  %-20d  %-7d  %-8d  %-5d  %-5d  %s\n",
			i+1, seed, final.Tick, final.Score, final.Level, final.Cat.Eaten, result)

		totalScore += final.Score
		totalEaten += final.Cat.Eaten
		bestScore = max(bestScore, final.Score)

		if rec != nil {
			if err := saveRecording(rec, final, i); err != nil {
				return err
			}
		}
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Avg: %.0f  Eaten: %d  Game overs: %d\n",
		flagSimRuns, bestScore, float64(totalScore)/float64(flagSimRuns), totalEaten, deaths)
	return nil
}

// saveRecording writes run i to the --record path.
func saveRecording(rec *replay.Recorder, final sim.GameState, i int) error {
	path := flagSimRecord
	if flagSimRuns > 1 {
		ext := filepath.Ext(path)
		path = fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i+1, ext)
	}
	if err := replay.WriteFile(path, rec.Finish(final)); err != nil {
		return err
	}
	fmt.Printf("        recorded %s\n", path)
	return nil
}

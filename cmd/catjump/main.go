// catjump is an endless vertical jumper for the terminal: steer a cat from
// platform to platform, dodge dogs and cacti, and climb as high as you can.
//
// Usage:
//
//	catjump                  - Start the mode and skin picker
//	catjump play             - Play a run directly
//	catjump serve            - Start SSH server for remote play
//	catjump scores           - Show high scores
//	catjump skins            - List or select cat skins
//	catjump sim              - Run autopilot simulations
//	catjump replay <file>    - Verify a recorded run
//
// Global flags:
//
//	--tick <dur>       - Set tick interval (default: 12ms)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.catjump/catjump.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catjump/internal/core"
)

var (
	// Global flags
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catjump",
	Short: "Cat Jump - an endless jumper in your terminal",
	Long: `Cat Jump is a terminal game: steer a cat upwards from platform to
platform, eat mice and birds, and avoid dogs and cacti.

Run without a command to open the mode and skin picker.

Available commands:
  play     - Play a run directly
  serve    - Start SSH server for remote play
  scores   - View high scores
  skins    - List or select cat skins
  sim      - Run autopilot simulations
  replay   - Verify a recorded run

Examples:
  catjump
  catjump play --difficulty hard
  catjump serve --ssh :2222
  catjump sim --runs 20 --ticks 20000`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", core.DefaultTickInterval, "Simulation tick interval")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catjump/catjump.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the process logger. fallback receives logs when no log
// file is set; interactive commands pass io.Discard because the alt screen
// owns the terminal. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "catjump",
		Level:           level,
	})
	return logger, closeFn, nil
}

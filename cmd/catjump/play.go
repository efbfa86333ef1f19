package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/games/catjump"
	"github.com/vovakirdan/catjump/internal/platform/tui"
	"github.com/vovakirdan/catjump/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSkin       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run directly, skipping the menu.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/J     - Stop
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Terminals do not report key releases, so a move key keeps steering for a
short while (controls.hold_ticks) unless it repeats.

Difficulty options:
  easy   - Half the hazard chances, wider hazard spacing
  normal - Tunables as configured
  hard   - More dogs and cacti, tighter spacing

Examples:
  catjump play
  catjump play --difficulty hard
  catjump play --skin tuxedo
  catjump play --config ./my-catjump.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Cat skin id (see 'catjump skins')")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	if flagSkin != "" {
		if err := catjump.ValidateSkin(flagSkin); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	skinID := flagSkin
	if skinID == "" {
		skinID = storedSkin(store, logger)
	}

	catjump.SetConfigPath(flagConfig)
	catjump.SetSkin(skinID)

	game, err := registry.Create(catjump.ModeID(preset))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catjump/internal/core"
	"github.com/vovakirdan/catjump/internal/games/catjump"
	"github.com/vovakirdan/catjump/internal/platform/tui"
	"github.com/vovakirdan/catjump/internal/registry"
	"github.com/vovakirdan/catjump/internal/storage"
)

// runMenu loops menu -> game or scoreboard -> menu until the user quits.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	skinID := storedSkin(store, logger)
	lastMode := catjump.IDNormal

	for {
		menuResult, err := tui.RunMenu(store, cfg, skinID)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.SkinID != skinID {
			skinID = menuResult.SkinID
			saveSkin(store, skinID, logger)
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastMode)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		catjump.SetSkin(skinID)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "error", err)
			continue
		}
		lastMode = menuResult.GameID

		// Fresh seed per run unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("game: %w", err)
		}
	}
}

// terminalConfig builds the runtime config from flags and the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: flagTick,
		Seed:         flagSeed,
	}
}

// openStore opens the scores database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// storedSkin returns the persisted skin or the default.
func storedSkin(store *storage.Store, logger *log.Logger) string {
	if store == nil {
		return catjump.DefaultSkinID
	}
	id, err := store.SelectedSkin()
	if err != nil {
		logger.Warn("could not read skin", "error", err)
		return catjump.DefaultSkinID
	}
	return catjump.SkinOrDefault(id).ID
}

func saveSkin(store *storage.Store, id string, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.SaveSelectedSkin(id); err != nil {
		logger.Warn("could not save skin", "skin", id, "error", err)
	}
}

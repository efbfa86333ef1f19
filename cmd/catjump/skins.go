package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catjump/internal/games/catjump"
	"github.com/vovakirdan/catjump/internal/storage"
)

var flagSelectSkin string

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List or select cat skins",
	Long: `List the available cat skins, or select the one new runs start with.

Examples:
  catjump skins
  catjump skins --select tuxedo`,
	Args: cobra.NoArgs,
	RunE: runSkins,
}

func init() {
	skinsCmd.Flags().StringVar(&flagSelectSkin, "select", "", "Skin id to use for new runs")
}

func runSkins(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	if flagSelectSkin != "" {
		if err := catjump.ValidateSkin(flagSelectSkin); err != nil {
			return err
		}
		skin := catjump.SkinOrDefault(flagSelectSkin)
		if err := store.SaveSelectedSkin(skin.ID); err != nil {
			return err
		}
		fmt.Printf("Selected %s (%s)\n", skin.Name, skin.ID)
		return nil
	}

	current, err := store.SelectedSkin()
	if err != nil {
		return err
	}
	current = catjump.SkinOrDefault(current).ID

	fmt.Println("Available skins:")
	fmt.Println()
	for _, s := range catjump.Skins() {
		marker := " "
		if s.ID == current {
			marker = "*"
		}
		fmt.Printf("  %s %-14s  %s\n", marker, s.ID, s.Name)
	}
	fmt.Println()
	fmt.Println("Run 'catjump skins --select <id>' to change skins.")
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmo-arcade/internal/config"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo"
	"github.com/vovakirdan/cosmo-arcade/internal/platform/tui"
	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Show saved games",
	Long: `List the occupied save slots of the configured save backend.
Slot T holds the automatic save taken when a level starts.`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func runSaves(cmd *cobra.Command, args []string) error {
	var store *storage.Store
	if cur.cfg.Saves.Backend == config.BackendSQLite {
		s, err := storage.Open(cur.cfg.Saves.DBPath)
		if err != nil {
			return fmt.Errorf("opening saves database: %w", err)
		}
		defer s.Close()
		store = s
	}

	_, lister, err := cur.saveStore(store, cosmo.GameID)
	if err != nil {
		return err
	}
	slots, err := lister.Slots()
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		fmt.Println("No saved games.")
		fmt.Println()
		fmt.Println("Press F2 while playing to save a game.")
		return nil
	}

	fmt.Printf("Saved games (%s backend)\n", cur.cfg.Saves.Backend)
	fmt.Println()
	fmt.Println(tui.SlotTable(slots, 60, len(slots)+1).View())
	fmt.Println()
	fmt.Println("Run 'cosmo play --restore <slot>' to continue a game.")
	return nil
}

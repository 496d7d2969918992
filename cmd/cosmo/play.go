package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmo-arcade/internal/config"
	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels"
	"github.com/vovakirdan/cosmo-arcade/internal/platform/tui"
	"github.com/vovakirdan/cosmo-arcade/internal/registry"
	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

var (
	flagLevel   int
	flagRestore string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Without --level or --restore the title menu opens
first, where the difficulty and the starting level can be chosen.

Controls:
  Left/Right, A/D  - Walk
  Up/Down, W/S     - Look up and down, use doors and transporters
  Space/Z          - Jump (hold for a higher jump)
  X                - Drop a bomb
  P/Esc            - Pause
  F2 / F3          - Save / restore a game (then 1-9)
  R                - Play again (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  cosmo play
  cosmo play --difficulty easy
  cosmo play --level 4
  cosmo play --restore 2`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level (1-based), skipping the menu")
	playCmd.Flags().StringVar(&flagRestore, "restore", "", "Restore a saved game from slot 1-9, skipping the menu")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	defer cur.close()

	set, err := cur.levelSet()
	if err != nil {
		return err
	}

	store := cur.openStore()
	if store != nil {
		defer store.Close()
	}
	saves, lister, err := cur.saveStore(store, cosmo.GameID)
	if err != nil {
		return err
	}

	cfg := cur.runtimeConfig()

	// Straight into the game
	if flagLevel > 0 || flagRestore != "" {
		start := cur.cfg.Levels.Start
		if flagLevel > 0 {
			start = flagLevel - 1
		}
		game := cosmo.New(cur.gameOptions(set, saves, start))
		game.Reset(cfg)
		if flagRestore != "" {
			if len(flagRestore) != 1 {
				return fmt.Errorf("restore slot must be 1-9, got %q", flagRestore)
			}
			if err := game.LoadGame(flagRestore[0]); err != nil {
				if errors.Is(err, engine.ErrSaveTampered) {
					cur.logger.Error("save slot is corrupt", "slot", flagRestore, "error", err)
				}
				return fmt.Errorf("restore slot %s: %w", flagRestore, err)
			}
		}
		_, err := playGame(game, store, cfg)
		return err
	}

	// Title menu loop
	for {
		result, err := tui.RunMenu(tui.MenuConfig{
			Levels:     levelEntries(set),
			Difficulty: cur.difficulty,
			HasDemo:    true,
		}, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			game := cosmo.New(cur.difficultyOptions(result.Difficulty, set, saves, result.StartLevel))
			game.Reset(cfg)
			quit, err := playGame(game, store, cfg)
			if err != nil || quit {
				return err
			}

		case tui.ChoiceDemo:
			if err := watchDemo(set, cfg, ""); err != nil {
				cur.logger.Warn("demo unavailable", "error", err)
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(cosmo.GameID, registry.Title(cosmo.GameID), store, lister, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}

// difficultyOptions applies a preset picked on the title screen on top of
// the loaded configuration.
func (a *app) difficultyOptions(preset config.DifficultyPreset, set *levels.Set, saves engine.SaveStore, start int) cosmo.Options {
	picked := *a
	picked.cfg = a.base
	picked.cfg.Levels.BonusStars = slices.Clone(a.base.Levels.BonusStars)
	config.ApplyCosmoPreset(&picked.cfg, preset)
	return picked.gameOptions(set, saves, start)
}

// playGame runs a reset game until the player goes back to the menu or
// quits, which it reports.
func playGame(game *cosmo.Game, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	final, err := tui.Run(game, cfg, tui.Options{
		Store:      store,
		HoldFrames: cur.cfg.Input.HoldFrames,
		Logger:     cur.logger,
		Prepared:   true,
	})
	if err != nil {
		return true, fmt.Errorf("running game: %w", err)
	}
	if gerr := game.Err(); gerr != nil {
		return true, gerr
	}
	st := final.State()
	cur.logger.Info("game ended", "score", st.Score, "level", st.Level+1, "won", st.Won)
	return final.IsQuitting(), nil
}

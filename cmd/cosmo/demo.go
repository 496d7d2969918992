package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels"
	"github.com/vovakirdan/cosmo-arcade/internal/platform/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Record or watch a demo",
	Long: `A demo is a recording of the keys pressed on every frame. It plays
through a fixed run of levels, and playing it back repeats the game
exactly.

Examples:
  cosmo demo record
  cosmo demo watch
  cosmo demo watch ~/demos/speedrun.mni`,
}

var demoRecordCmd = &cobra.Command{
	Use:   "record [file]",
	Short: "Play while recording a demo",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemoRecord,
}

var demoWatchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Play back a recorded demo",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemoWatch,
}

func init() {
	demoCmd.AddCommand(demoRecordCmd)
	demoCmd.AddCommand(demoWatchCmd)
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runDemoRecord(cmd *cobra.Command, args []string) error {
	defer cur.close()

	path, err := cur.demoPath(fileArg(args))
	if err != nil {
		return err
	}
	set, err := cur.levelSet()
	if err != nil {
		return err
	}

	cfg := cur.runtimeConfig()
	game := cosmo.New(cur.gameOptions(set, engine.NewMemorySaveStore(), 0))
	game.Reset(cfg)
	if err := game.RecordDemo(); err != nil {
		return err
	}

	// No store: demo runs are not scored.
	if _, err := playGame(game, nil, cfg); err != nil {
		return err
	}

	tape := game.DemoTape()
	if tape == nil || len(tape.Frames) == 0 {
		fmt.Println("Nothing recorded.")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create demo file: %w", err)
	}
	defer f.Close()
	if _, err := tape.WriteTo(f); err != nil {
		return fmt.Errorf("write demo %s: %w", path, err)
	}
	cur.logger.Info("demo saved", "path", path, "frames", len(tape.Frames))
	fmt.Printf("Recorded %d frames to %s\n", len(tape.Frames), path)
	return nil
}

func runDemoWatch(cmd *cobra.Command, args []string) error {
	defer cur.close()

	set, err := cur.levelSet()
	if err != nil {
		return err
	}
	return watchDemo(set, cur.runtimeConfig(), fileArg(args))
}

// watchDemo plays a demo tape until it ends or the viewer leaves.
func watchDemo(set *levels.Set, cfg core.RuntimeConfig, arg string) error {
	path, err := cur.demoPath(arg)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open demo: %w", err)
	}
	tape, err := engine.ReadDemoTape(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read demo %s: %w", path, err)
	}

	game := cosmo.New(cur.gameOptions(set, engine.NewMemorySaveStore(), 0))
	game.Reset(cfg)
	if err := game.PlayDemo(tape); err != nil {
		return err
	}

	_, err = tui.Run(game, cfg, tui.Options{
		HoldFrames: cur.cfg.Input.HoldFrames,
		Logger:     cur.logger,
		Prepared:   true,
	})
	return err
}

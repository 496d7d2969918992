package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cosmo-arcade/internal/config"
	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels"
	"github.com/vovakirdan/cosmo-arcade/internal/platform/tui"
	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

// app is the state shared by every command.
type app struct {
	cfg config.CosmoConfig
	// base is cfg before the difficulty preset.
	base       config.CosmoConfig
	difficulty config.DifficultyPreset
	logger     *log.Logger
	logFile    *os.File
}

var cur app

// loadApp reads the configuration and applies the global flags.
func loadApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadCosmo(flagConfig)
	if err != nil {
		return err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagDBPath != "" {
		cfg.Saves.DBPath = flagDBPath
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	base := cfg
	base.Levels.BonusStars = slices.Clone(cfg.Levels.BonusStars)
	config.ApplyCosmoPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	cur = app{cfg: cfg, base: base, difficulty: preset}
	if err := cur.openLogger(cmd.Name()); err != nil {
		return err
	}

	if os.Getenv("NO_COLOR") != "" {
		tui.SetTheme(tui.MonochromeTheme())
		tui.SetPlainOutput(true)
	}
	return nil
}

// openLogger logs to stderr, except in full-screen commands, which log to
// the --log file or nowhere.
func (a *app) openLogger(command string) error {
	var w io.Writer = os.Stderr
	if command == "play" || command == "record" || command == "watch" {
		w = io.Discard
		if flagLogPath != "" {
			f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			a.logFile = f
			w = f
		}
	}

	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cosmo",
	})
	if flagVerbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// levelSet loads the configured level directory or the built-in levels.
func (a *app) levelSet() (*levels.Set, error) {
	if a.cfg.Levels.Dir == "" {
		return levels.Embedded()
	}
	dir, err := config.ExpandPath(a.cfg.Levels.Dir)
	if err != nil {
		return nil, err
	}
	loader := levels.NewLoader(dir)
	loader.Episode = a.cfg.Levels.Episode
	set, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	a.logger.Info("levels loaded", "dir", dir, "count", set.Len())
	return set, nil
}

// levelEntries lists a level set for the title menu.
func levelEntries(set *levels.Set) []tui.LevelEntry {
	nums := set.Nums()
	entries := make([]tui.LevelEntry, len(nums))
	for i, n := range nums {
		entries[i] = tui.LevelEntry{Num: n, Name: set.Name(n)}
	}
	return entries
}

// openStore opens the database; scores are optional, so failures only warn.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Saves.DBPath)
	if err != nil {
		a.logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// saveStore returns the configured save slot backend. The sqlite backend
// shares the scores database.
func (a *app) saveStore(store *storage.Store, key string) (engine.SaveStore, storage.SlotLister, error) {
	switch a.cfg.Saves.Backend {
	case config.BackendSQLite:
		if store == nil {
			return nil, nil, fmt.Errorf("sqlite saves need the database at %s", a.cfg.Saves.DBPath)
		}
		s := store.SaveStore(key)
		return s, s, nil
	default:
		s, err := storage.OpenGdata(a.cfg.Saves.AppName)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
}

// gameOptions builds the game options for a level set and save store.
func (a *app) gameOptions(set *levels.Set, saves engine.SaveStore, startLevel int) cosmo.Options {
	c := a.cfg
	return cosmo.Options{
		Levels:  set,
		Saves:   saves,
		Logger:  a.logger,
		Episode: c.Levels.Episode,
		Start: engine.GameStart{
			Health:    c.Player.Health,
			MaxHealth: c.Player.MaxHealth,
			Bombs:     c.Player.Bombs,
		},
		StartLevel: startLevel,
		LevelOrder: c.Levels.Order,
		BonusStars: c.BonusThresholds(),
	}
}

// runtimeConfig sizes the game to the terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: a.cfg.TickRate,
		Seed:     seed,
	}
}

// demoPath returns the demo tape path, creating its directory.
func (a *app) demoPath(arg string) (string, error) {
	path := a.cfg.Demo.Path
	if arg != "" {
		path = arg
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create demo directory: %w", err)
	}
	return path, nil
}

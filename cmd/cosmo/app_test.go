package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmo-arcade/internal/config"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels"
)

func testApp(preset config.DifficultyPreset) app {
	base := config.DefaultCosmoConfig()
	cfg := base
	cfg.Levels.BonusStars = append([]int(nil), base.Levels.BonusStars...)
	config.ApplyCosmoPreset(&cfg, preset)
	return app{cfg: cfg, base: base, difficulty: preset, logger: log.New(io.Discard)}
}

func TestDifficultyOptionsStartFromBase(t *testing.T) {
	a := testApp(config.DifficultyEasy)

	// Normal picked on the title screen undoes the --difficulty easy preset.
	opts := a.difficultyOptions(config.DifficultyNormal, nil, nil, 2)
	if opts.Start.Bombs != 0 || opts.Start.MaxHealth != 3 {
		t.Errorf("Start = %+v, expected the configured defaults", opts.Start)
	}
	if opts.BonusStars != [2]int{25, 50} {
		t.Errorf("BonusStars = %v, expected [25 50]", opts.BonusStars)
	}
	if opts.StartLevel != 2 {
		t.Errorf("StartLevel = %d, expected 2", opts.StartLevel)
	}

	hard := a.difficultyOptions(config.DifficultyHard, nil, nil, 0)
	if hard.Start.Health != 3 {
		t.Errorf("hard Health = %d, expected 3", hard.Start.Health)
	}

	// The shared config is untouched.
	if a.cfg.Player.Bombs != 3 || a.base.Levels.BonusStars[0] != 25 {
		t.Errorf("app config changed: cfg %+v base %+v", a.cfg.Player, a.base.Levels)
	}
}

func TestLevelEntries(t *testing.T) {
	set, err := levels.Embedded()
	if err != nil {
		t.Fatalf("Embedded() failed: %v", err)
	}

	entries := levelEntries(set)
	if len(entries) != set.Len() {
		t.Fatalf("got %d entries, expected %d", len(entries), set.Len())
	}
	for i, n := range set.Nums() {
		if entries[i].Num != n || entries[i].Name != set.Name(n) {
			t.Errorf("entry %d = %+v, expected level %d %q", i, entries[i], n, set.Name(n))
		}
	}
}

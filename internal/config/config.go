// Package config provides YAML-based game configuration loading and
// difficulty presets for the cosmo arcade.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// CosmoConfig contains all configuration for Cosmo's Cosmic Adventure.
type CosmoConfig struct {
	TickRate int          `yaml:"tick_rate"` // Frames per second
	Player   PlayerConfig `yaml:"player"`
	Levels   LevelsConfig `yaml:"levels"`
	Saves    SavesConfig  `yaml:"saves"`
	Input    InputConfig  `yaml:"input"`
	Demo     DemoConfig   `yaml:"demo"`
}

// PlayerConfig is the state a new game starts with.
type PlayerConfig struct {
	Health    int `yaml:"health"`     // Includes the hidden extra bar
	MaxHealth int `yaml:"max_health"` // Bars shown on the status line
	Bombs     int `yaml:"bombs"`
}

// LevelsConfig selects where levels come from and the order they are played.
type LevelsConfig struct {
	Dir        string `yaml:"dir"` // Empty means the embedded level set
	Episode    int    `yaml:"episode"`
	Start      int    `yaml:"start"`
	Order      []int  `yaml:"order"`       // Replaces the section progression when set
	BonusStars []int  `yaml:"bonus_stars"` // Stars needed for the first and second bonus level
}

// SavesConfig selects the save slot backend.
type SavesConfig struct {
	Backend string `yaml:"backend"` // "gdata" or "sqlite"
	AppName string `yaml:"app_name"`
	DBPath  string `yaml:"db_path"`
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	// HoldFrames is how many frames a key counts as held after a press.
	// Terminals report repeats, never releases.
	HoldFrames int `yaml:"hold_frames"`
}

// DemoConfig locates the demo tape.
type DemoConfig struct {
	Path string `yaml:"path"`
}

// Save backends.
const (
	BackendGdata  = "gdata"
	BackendSQLite = "sqlite"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the engine cannot work with.
func (c CosmoConfig) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Player.Health < 1 || c.Player.MaxHealth < 1 {
		errs = append(errs, fmt.Errorf("player health %d/%d must be at least 1", c.Player.Health, c.Player.MaxHealth))
	}
	if c.Player.Bombs < 0 {
		errs = append(errs, fmt.Errorf("player bombs must not be negative, got %d", c.Player.Bombs))
	}
	if c.Levels.Episode < 1 || c.Levels.Episode > 3 {
		errs = append(errs, fmt.Errorf("levels episode must be 1-3, got %d", c.Levels.Episode))
	}
	if n := len(c.Levels.BonusStars); n != 0 && n != 2 {
		errs = append(errs, fmt.Errorf("levels bonus_stars needs two values, got %d", n))
	}
	if !slices.Contains([]string{BackendGdata, BackendSQLite}, c.Saves.Backend) {
		errs = append(errs, fmt.Errorf("saves backend %q is not gdata or sqlite", c.Saves.Backend))
	}
	if c.Input.HoldFrames < 1 {
		errs = append(errs, fmt.Errorf("input hold_frames must be at least 1, got %d", c.Input.HoldFrames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// BonusThresholds returns the two bonus star counts, zero when unset.
func (c CosmoConfig) BonusThresholds() [2]int {
	var t [2]int
	if len(c.Levels.BonusStars) == 2 {
		copy(t[:], c.Levels.BonusStars)
	}
	return t
}

package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name is normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// ApplyCosmoPreset adjusts the starting player state for a difficulty
// preset. Normal keeps the configured values.
func ApplyCosmoPreset(cfg *CosmoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 6
		cfg.Player.MaxHealth = 5
		cfg.Player.Bombs = 3
		if len(cfg.Levels.BonusStars) == 2 {
			cfg.Levels.BonusStars = []int{cfg.Levels.BonusStars[0] / 2, cfg.Levels.BonusStars[1] / 2}
		}
	case DifficultyHard:
		cfg.Player.Health = 3
		cfg.Player.MaxHealth = 3
		cfg.Player.Bombs = 0
	}
}

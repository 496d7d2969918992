package config

import (
	_ "embed"
)

//go:embed defaults/cosmo.yaml
var defaultCosmoYAML []byte

// DefaultCosmoConfig returns the default Cosmo configuration.
func DefaultCosmoConfig() CosmoConfig {
	return CosmoConfig{
		TickRate: 10,
		Player: PlayerConfig{
			Health:    4,
			MaxHealth: 3,
			Bombs:     0,
		},
		Levels: LevelsConfig{
			Episode:    1,
			BonusStars: []int{25, 50},
		},
		Saves: SavesConfig{
			Backend: BackendGdata,
			AppName: "cosmo_arcade",
			DBPath:  "~/.cosmo/cosmo.db",
		},
		Input: InputConfig{
			HoldFrames: 3,
		},
		Demo: DemoConfig{
			Path: "~/.cosmo/PREVDEMO.MNI",
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/jettyboot.yaml
var defaultJettyYAML []byte

// DefaultJettyConfig returns the hardcoded default configuration.
// It mirrors defaults/jettyboot.yaml and backs it up if the embed fails to parse.
func DefaultJettyConfig() JettyConfig {
	return JettyConfig{
		World: WorldConfig{
			Width:      320,
			Height:     640,
			PlayTop:    160,
			PlayBottom: 480,
		},
		Physics: PhysicsConfig{
			ScrollSpeed:             2,
			RespawnScrollMultiplier: 4,
			Gravity:                 0.4,
			ClimbImpulse:            3.5,
			MaxFallSpeed:            3,
			EntrySpeed:              2,
			RespawnSpeedX:           2,
			RespawnSpeedY:           3,
			FlyawaySlow:             1.5,
			FlyawayNormal:           2.5,
			FlyawayFast:             3.5,
		},
		Actor: ActorConfig{
			Width:  40,
			Height: 40,
			SpawnX: 48,
			SpawnY: 320,
			LaneX:  128,
		},
		Obstacles: ObstacleConfig{
			Width:         24,
			Spacing:       120,
			MinOpening:    80,
			MaxOpening:    120,
			Jitter:        0.75,
			CapHeight:     16,
			BaseOffset:    280,
			FlyawayMargin: 0.1,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			EntryTicks:     60,
			BannerTicks:    60,
			BaseObstacles:  1,
			MaxNameLength:  16,
			ClimbHoldTicks: 4,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "", // Backend default
		},
		Menu: MenuConfig{
			HouseScores: []HouseScore{
				{Name: "Bosco", Score: 999999},
				{Name: "Steve", Score: 99999},
				{Name: "Lloyd", Score: 9999},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJettyYAML
}

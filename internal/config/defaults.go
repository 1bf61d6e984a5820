package config

import (
	_ "embed"
)

//go:embed defaults/hovercat.yaml
var defaultYAML []byte

// Default returns the built-in tuning configuration.
// It mirrors defaults/hovercat.yaml and is the fallback if the embedded
// file cannot be parsed.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  1280,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:   1200.0,
			JumpForce: -450.0,
		},
		Player: PlayerConfig{
			Size:                 80,
			XFraction:            0.25,
			CollisionWidthRatio:  0.70,
			CollisionHeightRatio: 0.55,
			BlinkDuration:        0.2,
		},
		Obstacles: ObstaclesConfig{
			Width:         100,
			GapHeight:     220,
			MaxGapDelta:   140,
			SpawnInterval: 2.0,
		},
		Speed: SpeedConfig{
			Base:           200,
			Max:            400,
			IncreasePerSec: 20,
			ScrollFactor:   0.2,
		},
		Session: SessionConfig{
			GameOverLockout: 1.0,
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/wallbreaker.yaml
var defaultWallbreakerYAML []byte

// DefaultWallbreakerConfig returns the built-in configuration. It matches
// the embedded defaults/wallbreaker.yaml.
func DefaultWallbreakerConfig() WallbreakerConfig {
	return WallbreakerConfig{
		Screen: ScreenConfig{
			Width:        1000,
			Height:       800,
			BannerHeight: 50,
			BrickArea:    0.75,
		},
		Ball: BallConfig{
			Size:            10,
			Speed:           5,
			Acceleration:    1.05,
			MaxSpeedDivisor: 15,
		},
		Paddle: PaddleConfig{
			Width:        150,
			Height:       8,
			KeySpeed:     5,
			Acceleration: 1.10,
			MaxSpeed:     100,
			KeyHoldTicks: 8,
		},
		Gameplay: GameplayConfig{
			Balls:       3,
			QueryRadius: 3,
			LedgerSize:  10,
		},
		Scoring: ScoringConfig{
			BreakableBump:      5,
			BreakableDestroyed: 100,
			PoisonedBump:       -10,
			PoisonedDestroyed:  -200,
			PaddleBump:         10,
		},
		Scores: ScoresConfig{
			Backend: BackendFile,
			Path:    "~/.wallbreaker/scores.txt",
		},
		Levels: LevelsConfig{
			Pack: "classic",
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.4,
		},
	}
}

package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts ball count, ball speed and paddle width relative to
// the loaded configuration. Normal leaves it untouched.
func ApplyPreset(cfg *WallbreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Balls += 2
		cfg.Ball.Speed *= 0.8
		cfg.Ball.Acceleration = 1 + (cfg.Ball.Acceleration-1)/2
		cfg.Paddle.Width = min(cfg.Paddle.Width*1.3, cfg.Screen.Width)
	case DifficultyHard:
		cfg.Gameplay.Balls = max(cfg.Gameplay.Balls-1, 1)
		cfg.Ball.Speed *= 1.25
		cfg.Ball.Acceleration = 1 + (cfg.Ball.Acceleration-1)*1.5
		cfg.Paddle.Width *= 0.75
	}
}

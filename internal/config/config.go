// Package config provides YAML-based configuration loading and difficulty
// presets for wallbreaker.
package config

import (
	"errors"
	"fmt"
)

// WallbreakerConfig contains every tunable of the game.
type WallbreakerConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Scores   ScoresConfig   `yaml:"scores"`
	Levels   LevelsConfig   `yaml:"levels"`
	Sound    SoundConfig    `yaml:"sound"`
	LogFile  string         `yaml:"log_file"`
}

// ScreenConfig defines the virtual playfield in world units.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BannerHeight float64 `yaml:"banner_height"`
	BrickArea    float64 `yaml:"brick_area"` // share of the field below the banner used by bricks
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	Acceleration    float64 `yaml:"acceleration"`
	MaxSpeedDivisor float64 `yaml:"max_speed_divisor"` // max speed = smallest brick side / divisor
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	KeySpeed     float64 `yaml:"key_speed"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	KeyHoldTicks int     `yaml:"key_hold_ticks"` // ticks without a key repeat before the paddle stops
}

// GameplayConfig defines rules shared by every level.
type GameplayConfig struct {
	Balls       int `yaml:"balls"`
	QueryRadius int `yaml:"query_radius"`
	LedgerSize  int `yaml:"ledger_size"`
}

// ScoringConfig defines score deltas per event.
type ScoringConfig struct {
	BreakableBump      int `yaml:"breakable_bump"`
	BreakableDestroyed int `yaml:"breakable_destroyed"`
	PoisonedBump       int `yaml:"poisoned_bump"`
	PoisonedDestroyed  int `yaml:"poisoned_destroyed"`
	PaddleBump         int `yaml:"paddle_bump"`
}

// Score storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ScoresConfig selects where the hall of fame is kept.
type ScoresConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// LevelsConfig selects the level pack.
type LevelsConfig struct {
	Pack  string `yaml:"pack"`  // registered pack name
	Dir   string `yaml:"dir"`   // directory pack, overrides Pack when set
	Watch bool   `yaml:"watch"` // reload Dir when its files change
}

// SoundConfig controls audio output.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// Validate reports the first setting that would make the game unplayable.
func (c WallbreakerConfig) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.BannerHeight < 0 || c.Screen.BannerHeight >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("banner_height %v must be within the screen", c.Screen.BannerHeight))
	}
	if c.Screen.BrickArea <= 0 || c.Screen.BrickArea > 1 {
		errs = append(errs, fmt.Errorf("brick_area %v must be in (0, 1]", c.Screen.BrickArea))
	}
	if c.Ball.Size <= 0 || c.Ball.Speed <= 0 {
		errs = append(errs, errors.New("ball size and speed must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Screen.Width {
		errs = append(errs, fmt.Errorf("paddle width %v must fit the screen", c.Paddle.Width))
	}
	if c.Gameplay.Balls <= 0 {
		errs = append(errs, fmt.Errorf("balls must be positive, got %d", c.Gameplay.Balls))
	}
	switch c.Scores.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown scores backend %q", c.Scores.Backend))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the brick breaker.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the game.
// Distances are in terminal cells; speeds in cells per tick.
type BreakoutConfig struct {
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Aim        BreakoutAim      `yaml:"aim"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutBall defines ball parameters.
type BreakoutBall struct {
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`      // Launch speed before difficulty scaling
	MaxSpeed  float64 `yaml:"max_speed"`  // Upper bound after scaling
	SpeedStep float64 `yaml:"speed_step"` // Amount for speed up/down
	// Terminal cells are about twice as tall as wide; vertical motion is
	// scaled by this factor so the ball looks equally fast on both axes.
	AspectY float64 `yaml:"aspect_y"`
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	WidthFraction float64 `yaml:"width_fraction"` // Of the surface width
	MinWidth      int     `yaml:"min_width"`
	Speed         float64 `yaml:"speed"`
	BottomOffset  int     `yaml:"bottom_offset"` // Rows between paddle and bottom edge
}

// BreakoutBricks defines brick field layout.
type BreakoutBricks struct {
	Height     int `yaml:"height"`
	Padding    int `yaml:"padding"`
	OffsetTop  int `yaml:"offset_top"`
	OffsetSide int `yaml:"offset_side"`
}

// BreakoutAim defines the launch aiming phase.
type BreakoutAim struct {
	MaxAngleDeg   float64 `yaml:"max_angle_deg"` // From straight up
	StepDeg       float64 `yaml:"step_deg"`      // Per key press
	CooldownTicks int     `yaml:"cooldown_ticks"`
	GuideLength   int     `yaml:"guide_length"`
}

// BreakoutGameplay defines game rules.
type BreakoutGameplay struct {
	Lives             int     `yaml:"lives"`
	BrickPoints       int     `yaml:"brick_points"`
	BounceMaxAngleDeg float64 `yaml:"bounce_max_angle_deg"`
	TickRate          int     `yaml:"tick_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate reports settings the game cannot run with.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive: %w", ErrInvalidConfig)
	case c.Ball.Speed <= 0 || c.Ball.MaxSpeed < c.Ball.Speed:
		return fmt.Errorf("ball.speed must be positive and at most ball.max_speed: %w", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("ball.radius must be positive: %w", ErrInvalidConfig)
	case c.Paddle.WidthFraction <= 0 || c.Paddle.WidthFraction > 1:
		return fmt.Errorf("paddle.width_fraction must be in (0, 1]: %w", ErrInvalidConfig)
	case c.Aim.MaxAngleDeg <= 0 || c.Aim.MaxAngleDeg >= 90:
		return fmt.Errorf("aim.max_angle_deg must be in (0, 90): %w", ErrInvalidConfig)
	case c.Gameplay.BounceMaxAngleDeg <= 0 || c.Gameplay.BounceMaxAngleDeg >= 90:
		return fmt.Errorf("gameplay.bounce_max_angle_deg must be in (0, 90): %w", ErrInvalidConfig)
	case c.Bricks.Height <= 0:
		return fmt.Errorf("bricks.height must be positive: %w", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value into a preset. An empty string
// means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

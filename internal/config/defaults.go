package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Ball: BreakoutBall{
			Radius:    0.5,
			Speed:     0.6,
			MaxSpeed:  1.4,
			SpeedStep: 0.1,
			AspectY:   0.5,
		},
		Paddle: BreakoutPaddle{
			WidthFraction: 0.16,
			MinWidth:      6,
			Speed:         1.5,
			BottomOffset:  1,
		},
		Bricks: BreakoutBricks{
			Height:     1,
			Padding:    1,
			OffsetTop:  2,
			OffsetSide: 2,
		},
		Aim: BreakoutAim{
			MaxAngleDeg:   70,
			StepDeg:       5,
			CooldownTicks: 30,
			GuideLength:   4,
		},
		Gameplay: BreakoutGameplay{
			Lives:             3,
			BrickPoints:       1,
			BounceMaxAngleDeg: 60,
			TickRate:          60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}

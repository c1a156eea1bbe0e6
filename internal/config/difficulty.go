package config

import (
	"fmt"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// Progression types.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// DifficultyManager scales the ball's launch speed as the player's score
// or play time grows.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting difficulty (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0, 1)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty in [initial, 1] for the given progress.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressScore:
		progress = float64(score) / maxAt
	case ProgressTime:
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = core.ClampF(progress, 0, 1)

	return d.initialLevel + progress*(1-d.initialLevel)
}

// Multiplier returns the speed factor for the given progress.
func (d *DifficultyManager) Multiplier(score int, ticks int) float64 {
	return 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// LaunchSpeed scales base by the current multiplier, capped at max.
func (d *DifficultyManager) LaunchSpeed(base, max float64, score int, ticks int) float64 {
	return core.ClampF(base*d.Multiplier(score, ticks), 0, max)
}

// Describe formats the multiplier for the HUD.
func (d *DifficultyManager) Describe(score int, ticks int) string {
	return fmt.Sprintf("x%.1f", d.Multiplier(score, ticks))
}

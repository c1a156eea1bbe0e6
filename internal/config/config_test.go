package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg := BreakoutConfig{}
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults drifted from DefaultBreakoutConfig:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nball:\n  speed: 0.9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Ball.Speed != 0.9 {
		t.Errorf("overrides not applied: %+v", cfg.Gameplay)
	}
	if cfg.Paddle.WidthFraction != DefaultBreakoutConfig().Paddle.WidthFraction {
		t.Errorf("missing keys should keep defaults")
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("gameplay: [oops"), 0o644)
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	_ = os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644)
	if _, err := LoadBreakout(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero lives error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }},
		{"speed above max", func(c *BreakoutConfig) { c.Ball.Speed = c.Ball.MaxSpeed + 1 }},
		{"flat aim", func(c *BreakoutConfig) { c.Aim.MaxAngleDeg = 90 }},
		{"wide paddle", func(c *BreakoutConfig) { c.Paddle.WidthFraction = 1.5 }},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }},
		{"flat bounce", func(c *BreakoutConfig) { c.Gameplay.BounceMaxAngleDeg = 0 }},
		{"flat bricks", func(c *BreakoutConfig) { c.Bricks.Height = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
		initial float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v", cfg.Difficulty.Enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("initial level = %v", cfg.Difficulty.InitialLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, "")
	if cfg != DefaultBreakoutConfig() {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset mismatch")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: ProgressScore, MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	if got := d.LaunchSpeed(1, 1.5, 100, 0); got != 1.5 {
		t.Errorf("LaunchSpeed should cap at max, got %v", got)
	}
	if got := d.Describe(0, 0); got != "x1.2" {
		t.Errorf("Describe = %q", got)
	}

	d.SetEnabled(false)
	if d.IsEnabled() || d.Level(100, 0) != 0.2 {
		t.Error("disabled manager should stay at the initial level")
	}

	d.SetInitialLevel(3)
	if d.Level(0, 0) != 1 {
		t.Error("SetInitialLevel should clamp to 1")
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressTime, MaxAt: 0},
	})
	if d.Level(0, 1) != 1 {
		t.Error("MaxAt 0 should reach full difficulty immediately")
	}
}

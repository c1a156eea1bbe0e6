package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/engine"
	"github.com/vovakirdan/tui-brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/tui-brickbreaker/internal/levels"
	"github.com/vovakirdan/tui-brickbreaker/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagStartLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the game at the main menu.

Controls:
  Left/Right, A/D  - Aim, then move the paddle
  Space/Enter      - Launch the ball
  Mouse            - Aim, launch with a click, then steer the paddle
  +/-              - Speed the ball up or down
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, narrow paddle, faster ball
  fixed  - No progression, stays at config's initial level

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --config ./breakout.yaml
  brickbreaker play --levels ./my-levels --start-level castle`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in campaign)")
	playCmd.Flags().StringVar(&flagStartLevel, "start-level", "", "Level to start from, by number (1-based) or ID")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	campaign, err := loadLevels(flagLevels)
	if err != nil {
		return err
	}
	start, err := startIndex(campaign, flagStartLevel)
	if err != nil {
		return err
	}

	tickRate := cfg.Gameplay.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := engine.NewGame(engine.Options{
		Width:    width,
		Height:   max(1, height-1), // Footer row
		TickRate: tickRate,
		Logger:   logger,
	})
	env := breakout.Env{Game: game, Config: cfg, Levels: campaign, StartLevel: start}
	if err := breakout.Start(env); err != nil {
		return err
	}

	logger.Info("session started", "levels", len(campaign), "start", campaign[start].ID, "tick_rate", tickRate)
	if err := tui.Run(game); err != nil {
		logger.Error("session ended with error", "err", err)
		return err
	}
	return nil
}

// loadLevels returns the built-in campaign, or the levels under dir.
func loadLevels(dir string) ([]levels.Level, error) {
	if dir == "" {
		return levels.Builtin()
	}
	campaign, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(campaign) == 0 {
		return nil, fmt.Errorf("no valid levels in %s", dir)
	}
	return campaign, nil
}

// startIndex resolves a 1-based level number or a level ID. Empty means the
// first level.
func startIndex(campaign []levels.Level, ref string) (int, error) {
	if ref == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(campaign) {
			return 0, fmt.Errorf("start level %d out of range 1-%d", n, len(campaign))
		}
		return n - 1, nil
	}
	for i, lvl := range campaign {
		if lvl.ID == ref {
			return i, nil
		}
	}
	return 0, fmt.Errorf("level not found: %s", ref)
}

// loadConfig loads the game config and applies the difficulty preset, if
// any. The result is validated again since presets override ball speed.
func loadConfig(path, difficulty string) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return cfg, err
	}
	if difficulty == "" {
		return cfg, nil
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// brickbreaker is a paddle-and-ball brick breaker for the terminal.
//
// Usage:
//
//	brickbreaker play        - Play the campaign
//	brickbreaker levels      - List levels, optionally validating files
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from the config
//	--log-file <path>   - Write logs to a file (logs are discarded otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal paddle-and-ball game. Aim the ball, launch
it, and keep it in play with the paddle until every brick is gone.

Available commands:
  play     - Play the campaign
  levels   - List levels and check level files

Examples:
  brickbreaker play
  brickbreaker play --difficulty hard
  brickbreaker play --levels ./my-levels --start-level 2
  brickbreaker levels --levels ./my-levels --validate`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config's tick rate)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger opens the session logger. The terminal belongs to the game, so
// without a log file everything is discarded.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

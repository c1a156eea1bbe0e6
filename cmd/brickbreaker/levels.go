package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brickbreaker/internal/levels"
)

var flagValidate bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `Shows the levels that 'play' would use, in play order.

With --validate, every file under --levels is checked and each problem is
reported; the command fails if any file is invalid.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in campaign)")
	levelsCmd.Flags().BoolVar(&flagValidate, "validate", false, "Report level files that fail to load")
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagValidate && flagLevels != "" {
		problems, err := levels.NewLoader(flagLevels).Check()
		if err != nil {
			return err
		}
		for _, p := range problems {
			fmt.Fprintf(out, "  invalid: %v\n", p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d invalid level file(s)", len(problems))
		}
	}

	campaign, err := loadLevels(flagLevels)
	if err != nil {
		return err
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range campaign {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %s\n", "#", maxIDLen, "ID", "Bricks", "Name")
	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %s\n", "-", maxIDLen, "--", "------", "----")
	for i, lvl := range campaign {
		fmt.Fprintf(out, "  %-3d  %-*s  %-7d  %s\n", i+1, maxIDLen, lvl.ID, lvl.BrickCount(), lvl.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'brickbreaker play --start-level <#|id>' to start from a level.")
	return nil
}

// Package levels provides brick layouts: grids of brick health, one per
// level, loaded from YAML files or the embedded campaign.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel is returned for grids the game cannot lay out.
var ErrInvalidLevel = errors.New("invalid level")

// MaxHealth is the toughest brick a level may contain.
const MaxHealth = 9

// Level is one brick layout. Grid[row][col] holds the brick's starting
// health; 0 leaves the cell empty.
type Level struct {
	ID       string
	Name     string
	Grid     [][]int
	FilePath string
}

// Rows returns the number of brick rows.
func (l Level) Rows() int { return len(l.Grid) }

// Cols returns the number of brick columns.
func (l Level) Cols() int {
	if len(l.Grid) == 0 {
		return 0
	}
	return len(l.Grid[0])
}

// BrickCount returns the number of non-empty cells.
func (l Level) BrickCount() int {
	n := 0
	for _, row := range l.Grid {
		for _, h := range row {
			if h > 0 {
				n++
			}
		}
	}
	return n
}

// Validate checks that every row has the same length and that health
// values are in range.
func (l Level) Validate() error {
	if len(l.Grid) == 0 || len(l.Grid[0]) == 0 {
		return fmt.Errorf("level %q: empty grid: %w", l.ID, ErrInvalidLevel)
	}
	cols := len(l.Grid[0])
	for r, row := range l.Grid {
		if len(row) != cols {
			return fmt.Errorf("level %q: row %d has %d cells, expected %d: %w",
				l.ID, r, len(row), cols, ErrInvalidLevel)
		}
		for c, h := range row {
			if h < 0 || h > MaxHealth {
				return fmt.Errorf("level %q: cell (%d, %d) health %d out of range: %w",
					l.ID, r, c, h, ErrInvalidLevel)
			}
		}
	}
	if l.BrickCount() == 0 {
		return fmt.Errorf("level %q: no bricks: %w", l.ID, ErrInvalidLevel)
	}
	return nil
}

// Clone returns a deep copy, so a running field never mutates level data.
func (l Level) Clone() Level {
	grid := make([][]int, len(l.Grid))
	for i, row := range l.Grid {
		grid[i] = append([]int(nil), row...)
	}
	l.Grid = grid
	return l
}

// yamlLevel is the on-disk layout. Either grid or rows may be given;
// rows are strings where '.' or '0' is empty and '1'-'9' is health.
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Grid [][]int  `yaml:"grid,omitempty"`
	Rows []string `yaml:"rows,omitempty"`
}

// ParseYAML decodes and validates a level file.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id: %w", ErrInvalidLevel)
	}

	level := Level{ID: yl.ID, Name: yl.Name, Grid: yl.Grid}
	if level.Name == "" {
		level.Name = yl.ID
	}

	if len(yl.Rows) > 0 {
		if len(yl.Grid) > 0 {
			return Level{}, fmt.Errorf("level %q: both grid and rows given: %w", yl.ID, ErrInvalidLevel)
		}
		grid, err := parseRows(yl.Rows)
		if err != nil {
			return Level{}, fmt.Errorf("level %q: %w", yl.ID, err)
		}
		level.Grid = grid
	}

	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func parseRows(rows []string) ([][]int, error) {
	grid := make([][]int, len(rows))
	for r, line := range rows {
		line = strings.TrimSpace(line)
		grid[r] = make([]int, 0, len(line))
		for c, ch := range line {
			switch {
			case ch == '.':
				grid[r] = append(grid[r], 0)
			case ch >= '0' && ch <= '9':
				grid[r] = append(grid[r], int(ch-'0'))
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q: %w", r, c, ch, ErrInvalidLevel)
			}
		}
	}
	return grid, nil
}

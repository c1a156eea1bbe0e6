package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// screenPalette maps screen colors to terminal colors. ColorDefault keeps
// the terminal's own foreground.
var screenPalette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// pausedColor replaces every cell color while the terminal is unfocused.
const pausedColor = lipgloss.Color("238")

var (
	plainStyle  = lipgloss.NewStyle()
	pausedStyle = lipgloss.NewStyle().Foreground(pausedColor)
	cellStyles  = paletteStyles(screenPalette)
)

func paletteStyles(p map[core.Color]lipgloss.Color) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(p))
	for c, fg := range p {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}

// styleFor returns the style for a cell color.
func styleFor(c core.Color, paused bool) lipgloss.Style {
	if paused {
		return pausedStyle
	}
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return plainStyle
}

// RenderScreen converts the game screen to a styled string. Runs of equally
// colored cells share one style; a paused game is drawn in a single dim
// color, so each row is one run.
func RenderScreen(s *core.Screen, paused bool) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y, paused)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int, paused bool) {
	run := make([]rune, 0, s.Width())
	var color core.Color

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(color, paused).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x == 0 {
			color = cell.Color
		} else if cell.Color != color && !paused {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
}

package ui

import (
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// Label is a line of text centered horizontally at a fraction of the
// surface height.
type Label struct {
	Text  string
	Color core.Color

	surface core.Sizer
	row     float64
}

// NewLabel creates a label drawn at rowFraction of the surface height.
func NewLabel(surface core.Sizer, text string, rowFraction float64, color core.Color) *Label {
	return &Label{Text: text, Color: color, surface: surface, row: rowFraction}
}

// Row returns the screen row the label is drawn on.
func (l *Label) Row() int {
	return int(float64(l.surface.Height()) * l.row)
}

func (l *Label) Update(time.Duration) {}

func (l *Label) Draw(dst *core.Screen) {
	dst.DrawTextCenteredColored(l.Row(), l.Text, l.Color)
}

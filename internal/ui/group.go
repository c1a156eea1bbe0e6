package ui

import (
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

const (
	minButtonWidth = 12
	buttonGap      = 1
)

// ButtonGroup is a vertical stack of buttons with one selected at a time.
// Selection stops at the first and last button rather than wrapping.
type ButtonGroup struct {
	surface  core.Sizer
	top      float64
	buttons  []*Button
	selected int
}

// NewButtonGroup creates an empty group whose first button sits at
// topFraction of the surface height.
func NewButtonGroup(surface core.Sizer, topFraction float64) *ButtonGroup {
	return &ButtonGroup{surface: surface, top: topFraction}
}

// Add appends a button. The first button added starts selected.
func (g *ButtonGroup) Add(b *Button) {
	g.buttons = append(g.buttons, b)
	g.Layout()
}

// Len returns the number of buttons.
func (g *ButtonGroup) Len() int { return len(g.buttons) }

// Buttons returns the buttons in order.
func (g *ButtonGroup) Buttons() []*Button { return g.buttons }

// SelectedIndex returns the index of the selected button.
func (g *ButtonGroup) SelectedIndex() int { return g.selected }

// Selected returns the selected button, or nil for an empty group.
func (g *ButtonGroup) Selected() *Button {
	if len(g.buttons) == 0 {
		return nil
	}
	return g.buttons[g.selected]
}

// Select moves the selection to i, clamped to the valid range.
func (g *ButtonGroup) Select(i int) {
	if len(g.buttons) == 0 {
		g.selected = 0
		return
	}
	g.selected = core.Clamp(i, 0, len(g.buttons)-1)
	for j, b := range g.buttons {
		b.Selected = j == g.selected
	}
}

// MoveUp selects the previous button.
func (g *ButtonGroup) MoveUp() { g.Select(g.selected - 1) }

// MoveDown selects the next button.
func (g *ButtonGroup) MoveDown() { g.Select(g.selected + 1) }

// SelectCurrent presses the selected button.
func (g *ButtonGroup) SelectCurrent() bool {
	b := g.Selected()
	if b == nil {
		return false
	}
	b.Press()
	return true
}

// IntersectsXY reports whether (x, y) is over any button.
func (g *ButtonGroup) IntersectsXY(x, y float64) bool {
	_, ok := g.ButtonAt(x, y)
	return ok
}

// ButtonAt returns the index of the button under (x, y).
func (g *ButtonGroup) ButtonAt(x, y float64) (int, bool) {
	for i, b := range g.buttons {
		if b.Intersects(x, y) {
			return i, true
		}
	}
	return -1, false
}

// HoverAt selects the button under (x, y), if any.
func (g *ButtonGroup) HoverAt(x, y float64) bool {
	i, ok := g.ButtonAt(x, y)
	if ok {
		g.Select(i)
	}
	return ok
}

// Layout positions the buttons for the current surface size.
func (g *ButtonGroup) Layout() {
	w := float64(g.surface.Width())
	h := float64(g.surface.Height())

	width := float64(minButtonWidth)
	for _, b := range g.buttons {
		width = max(width, float64(core.TextWidth(b.Text)+6))
	}
	width = max(width, float64(int(w/6)))

	height := 1.0
	if h >= 24 {
		height = 3
	}

	y := float64(int(h * g.top))
	for _, b := range g.buttons {
		b.Bounds = core.Box{
			X:      float64(int((w - width) / 2)),
			Y:      y,
			Width:  width,
			Height: height,
		}
		y += height + buttonGap
	}
	g.Select(g.selected)
}

// Update keeps the layout in step with the surface size.
func (g *ButtonGroup) Update(time.Duration) { g.Layout() }

// Draw renders every button.
func (g *ButtonGroup) Draw(dst *core.Screen) {
	for _, b := range g.buttons {
		b.Draw(dst)
	}
}

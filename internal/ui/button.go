// Package ui provides the menu widgets: buttons, button groups and labels.
// All of them are engine entities laid out relative to the play surface.
package ui

import (
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// Button is a labelled, clickable box.
type Button struct {
	Text     string
	Bounds   core.Box
	Selected bool

	handler func()
	presses int
}

// NewButton creates a button that runs handler when pressed.
func NewButton(text string, handler func()) *Button {
	return &Button{Text: text, handler: handler}
}

// SetHandler replaces the press handler.
func (b *Button) SetHandler(fn func()) {
	b.handler = fn
}

// Presses returns how many times the button has fired.
func (b *Button) Presses() int {
	return b.presses
}

// Intersects reports whether the cell at (x, y) is on the button.
func (b *Button) Intersects(x, y float64) bool {
	return x >= b.Bounds.X && x < b.Bounds.Right() &&
		y >= b.Bounds.Y && y < b.Bounds.Bottom()
}

// Press fires the handler.
func (b *Button) Press() {
	b.presses++
	if b.handler != nil {
		b.handler()
	}
}

// ClickedOn presses the button if (x, y) is on it.
func (b *Button) ClickedOn(x, y float64) bool {
	if !b.Intersects(x, y) {
		return false
	}
	b.Press()
	return true
}

// Update is a no-op; ButtonGroup lays buttons out.
func (b *Button) Update(time.Duration) {}

// Draw renders the button, highlighted when selected.
func (b *Button) Draw(dst *core.Screen) {
	r := b.Bounds.Cells()
	fill, text := core.ColorBlue, core.ColorBrightWhite
	if b.Selected {
		fill, text = core.ColorBrightCyan, core.ColorBrightYellow
	}
	dst.FillRect(r, '░', fill)

	label := b.Text
	if b.Selected {
		label = "▸ " + label + " ◂"
	}
	x := r.X + (r.W-core.TextWidth(label))/2
	y := r.Y + r.H/2
	dst.DrawTextColored(x, y, label, text)
}

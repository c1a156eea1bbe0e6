package ui

import (
	"testing"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

type size struct{ w, h int }

func (s *size) Width() int  { return s.w }
func (s *size) Height() int { return s.h }

func newGroup(t *testing.T, names ...string) (*ButtonGroup, map[string]int) {
	t.Helper()
	pressed := make(map[string]int)
	g := NewButtonGroup(&size{80, 24}, 0.5)
	for _, n := range names {
		g.Add(NewButton(n, func() { pressed[n]++ }))
	}
	return g, pressed
}

func TestButtonGroupSelectionClamps(t *testing.T) {
	g, _ := newGroup(t, "Start", "Options", "Quit")

	tests := []struct {
		name string
		move func()
		want int
	}{
		{"up at top stays", g.MoveUp, 0},
		{"down", g.MoveDown, 1},
		{"down again", g.MoveDown, 2},
		{"down at bottom stays", g.MoveDown, 2},
		{"up", g.MoveUp, 1},
	}
	for _, tt := range tests {
		tt.move()
		if got := g.SelectedIndex(); got != tt.want {
			t.Errorf("%s: selected = %d, expected %d", tt.name, got, tt.want)
		}
	}

	for i, b := range g.Buttons() {
		if b.Selected != (i == 1) {
			t.Errorf("button %d Selected = %v", i, b.Selected)
		}
	}
}

func TestButtonGroupSelectCurrent(t *testing.T) {
	g, pressed := newGroup(t, "Start", "Quit")
	g.MoveDown()

	if !g.SelectCurrent() {
		t.Fatal("SelectCurrent returned false")
	}
	if pressed["Quit"] != 1 || pressed["Start"] != 0 {
		t.Errorf("pressed = %v", pressed)
	}

	empty := NewButtonGroup(&size{10, 10}, 0)
	if empty.SelectCurrent() || empty.Selected() != nil {
		t.Error("empty group should not press anything")
	}
	empty.MoveDown()
	if empty.SelectedIndex() != 0 {
		t.Error("empty group index should stay 0")
	}
}

func TestButtonGroupLayoutAndHover(t *testing.T) {
	surface := &size{80, 24}
	g := NewButtonGroup(surface, 0.5)
	start := NewButton("Start", nil)
	quit := NewButton("Quit", nil)
	g.Add(start)
	g.Add(quit)

	if start.Bounds.Y != 12 {
		t.Errorf("first button Y = %v, expected 12", start.Bounds.Y)
	}
	if quit.Bounds.Y <= start.Bounds.Bottom()-1 {
		t.Errorf("buttons overlap: %+v %+v", start.Bounds, quit.Bounds)
	}

	c := quit.Bounds.Center()
	if !g.IntersectsXY(c.X, c.Y) {
		t.Fatal("center of Quit should intersect the group")
	}
	if !g.HoverAt(c.X, c.Y) || g.Selected() != quit {
		t.Error("hover did not select Quit")
	}
	if g.IntersectsXY(0, 0) {
		t.Error("corner should not intersect")
	}

	// A smaller surface re-flows on the next update.
	surface.w, surface.h = 40, 10
	g.Update(0)
	if start.Bounds.Y != 5 || start.Bounds.Height != 1 {
		t.Errorf("after resize start = %+v", start.Bounds)
	}
}

func TestButtonClickedOn(t *testing.T) {
	hits := 0
	b := NewButton("Go", func() { hits++ })
	b.Bounds = core.Box{X: 10, Y: 5, Width: 8, Height: 1}

	if b.ClickedOn(9, 5) {
		t.Error("click left of the button registered")
	}
	if !b.ClickedOn(10, 5) || hits != 1 || b.Presses() != 1 {
		t.Errorf("click on the button: hits = %d", hits)
	}
}

func TestButtonDraw(t *testing.T) {
	b := NewButton("Go", nil)
	b.Bounds = core.Box{X: 0, Y: 0, Width: 10, Height: 1}
	b.Selected = true

	s := core.NewScreen(10, 1)
	b.Draw(s)
	if got := s.Row(0); got != "░░▸ Go ◂░░" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestLabel(t *testing.T) {
	surface := &size{11, 10}
	l := NewLabel(surface, "Hi", 0.25, core.ColorYellow)
	s := core.NewScreen(11, 10)
	l.Draw(s)

	if l.Row() != 2 {
		t.Errorf("Row() = %d", l.Row())
	}
	if s.Get(4, 2) != 'H' || s.GetCell(4, 2).Color != core.ColorYellow {
		t.Errorf("label not drawn centered: %q", s.Row(2))
	}
}

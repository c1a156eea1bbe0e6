package input

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// PointerKind identifies a raw pointer signal.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
	PointerClick
	PointerEnter
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerClick:
		return "click"
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	}
	return fmt.Sprintf("PointerKind(%d)", int(k))
}

// PointerEvent is a raw signal in terminal coordinates.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	X, Y float64
	Time time.Time
}

// BoundsProvider reports where the play surface currently sits.
type BoundsProvider interface {
	Bounds() core.Box
}

// BoundsFunc adapts a function to BoundsProvider.
type BoundsFunc func() core.Box

// Bounds implements BoundsProvider.
func (f BoundsFunc) Bounds() core.Box { return f() }

// Pointer tracks the cursor relative to the play surface.
//
// WasClicked is a single-shot signal: it stays set until the next
// non-click signal or an explicit Reset, so a consumer that reads it every
// frame must clear it (ConsumeClick) or the click will be seen again.
type Pointer struct {
	surface     BoundsProvider
	attached    bool
	x, y        float64
	inBounds    bool
	down        bool
	id          int
	lastUpdated time.Time
	clicked     bool
}

// NewPointer creates a detached pointer for the given surface.
func NewPointer(surface BoundsProvider) *Pointer {
	return &Pointer{surface: surface}
}

// Attach starts accepting signals.
func (p *Pointer) Attach() { p.attached = true }

// Detach stops accepting signals. Calling it twice is harmless.
func (p *Pointer) Detach() { p.attached = false }

// Attached reports whether signals are being accepted.
func (p *Pointer) Attached() bool { return p.attached }

// Handle applies a raw signal. Signals are ignored while detached.
func (p *Pointer) Handle(evt PointerEvent) {
	if !p.attached {
		return
	}

	// The surface can move between signals.
	b := p.surface.Bounds()
	p.x = evt.X - b.X
	p.y = evt.Y - b.Y
	p.id = evt.ID
	p.lastUpdated = evt.Time

	switch evt.Kind {
	case PointerEnter:
		p.inBounds = true
	case PointerLeave:
		p.inBounds = false
		p.down = false
	default:
		p.inBounds = p.x >= 0 && p.y >= 0 && p.x < b.Width && p.y < b.Height
	}

	switch evt.Kind {
	case PointerDown:
		p.down = true
	case PointerUp:
		p.down = false
	}

	p.clicked = evt.Kind == PointerClick
}

// X returns the last x position relative to the surface.
func (p *Pointer) X() float64 { return p.x }

// Y returns the last y position relative to the surface.
func (p *Pointer) Y() float64 { return p.y }

// Position returns the last position as a vector.
func (p *Pointer) Position() core.Vec2 { return core.V(p.x, p.y) }

// InBounds reports whether the pointer was last seen over the surface.
func (p *Pointer) InBounds() bool { return p.inBounds }

// IsDown reports whether a button is held.
func (p *Pointer) IsDown() bool { return p.down }

// ID returns the id of the last signal's pointer.
func (p *Pointer) ID() int { return p.id }

// LastUpdated returns the time of the last accepted signal.
func (p *Pointer) LastUpdated() time.Time { return p.lastUpdated }

// WasClicked reports whether the last signal was a click that has not
// been cleared yet.
func (p *Pointer) WasClicked() bool { return p.clicked }

// ConsumeClick returns WasClicked and clears it.
func (p *Pointer) ConsumeClick() bool {
	c := p.clicked
	p.clicked = false
	return c
}

// Reset clears the click flag. Position is kept.
func (p *Pointer) Reset() { p.clicked = false }

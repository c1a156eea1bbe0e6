package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// Paddle is the player-controlled bar on the bottom rows of the field. Its
// width and row follow the surface so a resize keeps it in proportion.
type Paddle struct {
	X float64 // Left edge

	LeftPressed    bool
	RightPressed   bool
	PointerEnabled bool
	Enabled        bool

	surface core.Sizer
	cfg     config.BreakoutPaddle
}

// NewPaddle creates a paddle centered on the surface.
func NewPaddle(surface core.Sizer, cfg config.BreakoutPaddle) *Paddle {
	p := &Paddle{surface: surface, cfg: cfg, PointerEnabled: true, Enabled: true}
	p.Center()
	return p
}

// Width returns the paddle width in cells for the current surface.
func (p *Paddle) Width() float64 {
	w := math.Round(float64(p.surface.Width()) * p.cfg.WidthFraction)
	w = math.Max(w, float64(p.cfg.MinWidth))
	return math.Min(w, float64(p.surface.Width()))
}

// Y returns the paddle row.
func (p *Paddle) Y() float64 {
	return float64(p.surface.Height() - 1 - p.cfg.BottomOffset)
}

// Box returns the paddle's extent.
func (p *Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y(), Width: p.Width(), Height: 1}
}

// CenterX returns the horizontal middle of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width()/2
}

// Center moves the paddle to the middle of the surface and clears held
// directions.
func (p *Paddle) Center() {
	p.LeftPressed = false
	p.RightPressed = false
	p.X = (float64(p.surface.Width()) - p.Width()) / 2
	p.Clamp()
}

// Clamp keeps the paddle inside [0, width - paddle width].
func (p *Paddle) Clamp() {
	p.X = core.ClampF(p.X, 0, math.Max(0, float64(p.surface.Width())-p.Width()))
}

// FollowPointer centers the paddle on x.
func (p *Paddle) FollowPointer(x float64) {
	if !p.Enabled || !p.PointerEnabled {
		return
	}
	p.X = x - p.Width()/2
	p.Clamp()
}

func (p *Paddle) Update(time.Duration) {
	if p.Enabled {
		if p.LeftPressed {
			p.X -= p.cfg.Speed
		}
		if p.RightPressed {
			p.X += p.cfg.Speed
		}
	}
	p.Clamp()
}

func (p *Paddle) Draw(dst *core.Screen) {
	cells := p.Box().Cells()
	x := int(math.Round(p.X))
	dst.FillRect(core.NewRect(x, cells.Y, int(p.Width()), 1), PaddleChar, core.ColorBrightGreen)
}

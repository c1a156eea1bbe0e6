package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// Display characters
const (
	BallChar   = '●'
	PaddleChar = '='
	GuideChar  = '·'
)

// Ball is the moving circle. Velocity is in cells per tick along X; the
// vertical component is scaled by aspectY when applied so that motion looks
// even on terminal cells, which are roughly twice as tall as they are wide.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64

	aspectY float64
}

// NewBall creates a stationary ball at pos.
func NewBall(pos core.Vec2, radius, aspectY float64) *Ball {
	if aspectY <= 0 {
		aspectY = 1
	}
	return &Ball{Position: pos, Radius: radius, aspectY: aspectY}
}

// Circle returns the ball's collision shape at its current position.
func (b *Ball) Circle() core.Circle {
	return core.Circle{Center: b.Position, Radius: b.Radius}
}

// Step is the displacement applied by one Update.
func (b *Ball) Step() core.Vec2 {
	return core.V(b.Velocity.X, b.Velocity.Y*b.aspectY)
}

// Next returns where the ball will be after the next Update.
func (b *Ball) Next() core.Vec2 {
	return b.Position.Add(b.Step())
}

// Speed returns the length of the velocity vector.
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// Moving reports whether the ball has a non-zero velocity.
func (b *Ball) Moving() bool {
	return b.Velocity.X != 0 || b.Velocity.Y != 0
}

// Reset parks the ball at pos with no velocity.
func (b *Ball) Reset(pos core.Vec2) {
	b.Position = pos
	b.Velocity = core.Vec2{}
}

// Launch sets the velocity to speed along dir. dir need not be a unit vector.
func (b *Ball) Launch(dir core.Vec2, speed float64) bool {
	unit, ok := dir.Normalize()
	if !ok {
		return false
	}
	b.Velocity = unit.Scale(speed)
	return true
}

// FlipDx reverses horizontal motion.
func (b *Ball) FlipDx() { b.Velocity = b.Velocity.InvertX() }

// FlipDy reverses vertical motion.
func (b *Ball) FlipDy() { b.Velocity = b.Velocity.InvertY() }

// IncreaseSpeed pushes each non-zero velocity component away from zero by
// amount.
func (b *Ball) IncreaseSpeed(amount float64) {
	amount = math.Abs(amount)
	b.Velocity.X = awayFromZero(b.Velocity.X, amount)
	b.Velocity.Y = awayFromZero(b.Velocity.Y, amount)
}

// DecreaseSpeed pulls each non-zero velocity component toward zero by
// amount without changing its sign.
func (b *Ball) DecreaseSpeed(amount float64) {
	amount = math.Abs(amount)
	b.Velocity.X = towardZero(b.Velocity.X, amount)
	b.Velocity.Y = towardZero(b.Velocity.Y, amount)
}

func awayFromZero(v, amount float64) float64 {
	switch {
	case v > 0:
		return v + amount
	case v < 0:
		return v - amount
	}
	return 0
}

func towardZero(v, amount float64) float64 {
	switch {
	case v > 0:
		return math.Max(0, v-amount)
	case v < 0:
		return math.Min(0, v+amount)
	}
	return 0
}

func (b *Ball) Update(time.Duration) {
	b.Position = b.Next()
}

func (b *Ball) Draw(dst *core.Screen) {
	dst.SetColored(int(math.Floor(b.Position.X)), int(math.Floor(b.Position.Y)), BallChar, core.ColorBrightWhite)
}

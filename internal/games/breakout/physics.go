package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// AimDirection returns the unit vector deg degrees clockwise from straight
// up.
func AimDirection(deg float64) core.Vec2 {
	r := radians(deg)
	return core.V(math.Sin(r), -math.Cos(r))
}

// ClampAim limits an aim angle to [-maxDeg, maxDeg].
func ClampAim(deg, maxDeg float64) float64 {
	return core.ClampF(deg, -maxDeg, maxDeg)
}

// AimFromPointer returns the clamped angle from origin towards target, both
// in cells. ok is false when the two points coincide.
func AimFromPointer(origin, target core.Vec2, aspectY, maxDeg float64) (deg float64, ok bool) {
	d := target.Sub(origin)
	if aspectY > 0 {
		d.Y /= aspectY
	}
	if d.Length() == 0 {
		return 0, false
	}
	return ClampAim(degrees(math.Atan2(d.X, -d.Y)), maxDeg), true
}

// BounceOffPaddle sends the ball back up at an angle set by where it struck
// the paddle: straight up at the center, maxDeg at either end. Speed is
// preserved.
func BounceOffPaddle(ball *Ball, paddle *Paddle, maxDeg float64) {
	half := paddle.Width() / 2
	offset := 0.0
	if half > 0 {
		offset = core.ClampF((ball.Position.X-paddle.CenterX())/half, -1, 1)
	}
	speed := ball.Speed()
	ball.Velocity = AimDirection(offset * maxDeg).Scale(speed)
}

// reflectOffBrick flips the axis the ball most likely crossed: vertical when
// its center is within the brick's horizontal span, horizontal otherwise.
// It reads the ball's current position, before the step that overlaps the
// brick, so a diagonal approach that is still beside the brick counts as a
// side hit even when the next step lands on a top corner.
func reflectOffBrick(ball *Ball, box core.Box) {
	if ball.Position.X >= box.X && ball.Position.X <= box.Right() {
		ball.FlipDy()
		return
	}
	ball.FlipDx()
}

// AimGuide draws a dotted line from the ball in the aim direction.
type AimGuide struct {
	Origin  core.Vec2
	Angle   float64
	Length  int
	Visible bool

	aspectY float64
}

// NewAimGuide creates a hidden guide of length dots.
func NewAimGuide(length int, aspectY float64) *AimGuide {
	return &AimGuide{Length: length, aspectY: aspectY}
}

func (g *AimGuide) Update(time.Duration) {}

func (g *AimGuide) Draw(dst *core.Screen) {
	if !g.Visible {
		return
	}
	dir := AimDirection(g.Angle)
	step, ok := core.V(dir.X, dir.Y*g.aspectY).Normalize()
	if !ok {
		return
	}
	for i := 1; i <= g.Length; i++ {
		p := g.Origin.Add(step.Scale(float64(i) * 1.5))
		dst.SetColored(int(math.Floor(p.X)), int(math.Floor(p.Y)), GuideChar, core.ColorGray)
	}
}

package core

import "math"

// Circle is a circle in play-field units.
type Circle struct {
	Center Vec2
	Radius float64
}

// CircleIntersectsRect reports whether a circle touches a box.
// Boundaries are inclusive: a circle tangent to an edge or corner intersects.
func CircleIntersectsRect(c Circle, b Box) bool {
	halfW := b.Width / 2
	halfH := b.Height / 2
	distX := math.Abs(c.Center.X - b.X - halfW)
	distY := math.Abs(c.Center.Y - b.Y - halfH)

	// Too far apart on either axis
	if distX > halfW+c.Radius {
		return false
	}
	if distY > halfH+c.Radius {
		return false
	}

	// Center within the box's span on an axis
	if distX <= halfW {
		return true
	}
	if distY <= halfH {
		return true
	}

	// Corner region
	dx := distX - halfW
	dy := distY - halfH
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

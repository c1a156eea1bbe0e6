package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/core"
	"github.com/vovakirdan/tui-brickbreaker/internal/levels"
)

// Brick glyphs by remaining health, weakest first.
var BrickGlyphs = []rune{'░', '▒', '▓', '█'}

// Brick is a destructible box. Its position is remembered as fractions of
// the surface so it survives a resize.
type Brick struct {
	box        core.Box
	normalized core.Box
	status     int
}

// NewBrick creates a brick at box on a width x height surface.
func NewBrick(box core.Box, status int, width, height float64) *Brick {
	return &Brick{box: box, normalized: box.Normalize(width, height), status: status}
}

// Box returns the brick extent in surface units.
func (b *Brick) Box() core.Box { return b.box }

// Normalized returns the brick extent as surface fractions.
func (b *Brick) Normalized() core.Box { return b.normalized }

// Status returns the remaining health.
func (b *Brick) Status() int { return b.status }

// Damage removes one point of health. Damaging a destroyed brick keeps it
// destroyed.
func (b *Brick) Damage() {
	b.status--
}

// IsDestroyed reports whether the brick has no health left.
func (b *Brick) IsDestroyed() bool { return b.status <= 0 }

// Rescale recomputes the absolute box for a width x height surface.
func (b *Brick) Rescale(width, height float64) {
	b.box = b.normalized.Rescale(width, height)
}

func (b *Brick) Update(time.Duration) {}

func (b *Brick) Draw(dst *core.Screen) {
	if b.IsDestroyed() {
		return
	}
	glyph := BrickGlyphs[core.Clamp(b.status, 1, len(BrickGlyphs))-1]
	x0 := int(math.Round(b.box.X))
	x1 := int(math.Round(b.box.Right()))
	y0 := int(math.Round(b.box.Y))
	y1 := int(math.Round(b.box.Bottom()))
	dst.FillRect(core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0)), glyph, core.BrickColor(b.status))
}

// BrickField is the grid of bricks for one level.
type BrickField struct {
	level  levels.Level
	bricks [][]*Brick

	surface       core.Sizer
	width, height int
}

// NewBrickField lays out level on the current surface. Bricks share the
// width left after side offsets and padding; rows start below OffsetTop.
func NewBrickField(level levels.Level, layout config.BreakoutBricks, surface core.Sizer) *BrickField {
	f := &BrickField{level: level, surface: surface, width: surface.Width(), height: surface.Height()}

	cols := level.Cols()
	w := float64(f.width)
	h := float64(f.height)
	brickW := (w - float64(2*layout.OffsetSide) - float64((cols-1)*layout.Padding)) / float64(cols)
	brickW = math.Max(1, math.Floor(brickW))
	used := brickW*float64(cols) + float64((cols-1)*layout.Padding)
	left := math.Max(0, math.Floor((w-used)/2))
	brickH := float64(max(1, layout.Height))

	f.bricks = make([][]*Brick, level.Rows())
	for r, row := range level.Grid {
		f.bricks[r] = make([]*Brick, len(row))
		for c, health := range row {
			box := core.Box{
				X:      left + float64(c)*(brickW+float64(layout.Padding)),
				Y:      float64(layout.OffsetTop) + float64(r)*brickH,
				Width:  brickW,
				Height: brickH,
			}
			f.bricks[r][c] = NewBrick(box, health, w, h)
		}
	}
	return f
}

// Level returns the level the field was built from.
func (f *BrickField) Level() levels.Level { return f.level }

// Rows returns the number of brick rows.
func (f *BrickField) Rows() int { return len(f.bricks) }

// Cols returns the number of brick columns.
func (f *BrickField) Cols() int { return f.level.Cols() }

// Brick returns the brick at row r, column c, or nil if out of range.
func (f *BrickField) Brick(r, c int) *Brick {
	if r < 0 || r >= len(f.bricks) || c < 0 || c >= len(f.bricks[r]) {
		return nil
	}
	return f.bricks[r][c]
}

// Remaining counts bricks that are not destroyed.
func (f *BrickField) Remaining() int {
	n := 0
	for _, row := range f.bricks {
		for _, b := range row {
			if !b.IsDestroyed() {
				n++
			}
		}
	}
	return n
}

// AllDestroyed reports whether every brick is destroyed.
func (f *BrickField) AllDestroyed() bool {
	return f.Remaining() == 0
}

// FirstHit returns the first live brick in row-major order that the circle
// touches.
func (f *BrickField) FirstHit(c core.Circle) *Brick {
	for _, row := range f.bricks {
		for _, b := range row {
			if !b.IsDestroyed() && core.CircleIntersectsRect(c, b.box) {
				return b
			}
		}
	}
	return nil
}

// Rescale moves every brick onto a width x height surface.
func (f *BrickField) Rescale(width, height int) {
	f.width, f.height = width, height
	for _, row := range f.bricks {
		for _, b := range row {
			b.Rescale(float64(width), float64(height))
		}
	}
}

// Update follows surface size changes.
func (f *BrickField) Update(time.Duration) {
	if w, h := f.surface.Width(), f.surface.Height(); w != f.width || h != f.height {
		f.Rescale(w, h)
	}
}

func (f *BrickField) Draw(dst *core.Screen) {
	for _, row := range f.bricks {
		for _, b := range row {
			b.Draw(dst)
		}
	}
}

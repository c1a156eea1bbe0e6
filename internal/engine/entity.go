// Package engine runs the brick breaker: a stack of exclusive states, each
// owning an ordered list of entities, driven by a fixed-step clock.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// Entity is anything a state updates and draws every frame.
// Static entities implement Update as a no-op; invisible ones do the same
// with Draw.
type Entity interface {
	Update(elapsed time.Duration)
	Draw(dst *core.Screen)
}

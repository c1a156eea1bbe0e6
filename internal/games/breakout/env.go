// Package breakout is the brick breaker itself: the entities on the field
// and the menu, level, pause and result states that drive them.
package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/engine"
	"github.com/vovakirdan/tui-brickbreaker/internal/input"
	"github.com/vovakirdan/tui-brickbreaker/internal/levels"
)

// ErrNoLevels is returned when a session has nothing to play.
var ErrNoLevels = errors.New("breakout: no levels")

// Env is what every state needs: the running game, tuning and the campaign.
type Env struct {
	Game       *engine.Game
	Config     config.BreakoutConfig
	Levels     []levels.Level
	StartLevel int // Index into Levels for new runs
}

// Start validates env and pushes the main menu.
func Start(env Env) error {
	if env.Game == nil {
		return errors.New("breakout: nil game")
	}
	if len(env.Levels) == 0 {
		return ErrNoLevels
	}
	if env.StartLevel < 0 || env.StartLevel >= len(env.Levels) {
		return fmt.Errorf("breakout: start level %d out of range [0, %d)", env.StartLevel, len(env.Levels))
	}
	return env.Game.Start(NewMainMenu(env))
}

// Key actions
const (
	ActionMoveUp   = "moveup"
	ActionMoveDown = "movedown"
	ActionSelect   = "select"
	ActionBack     = "back"

	ActionLeft   = "left"
	ActionRight  = "right"
	ActionFire   = "fire"
	ActionPause  = "pause"
	ActionFaster = "faster"
	ActionSlower = "slower"
)

// Bindings is a set of action to key mappings installed by a state while it
// is the live one.
type Bindings map[string][]string

var menuBindings = Bindings{
	ActionMoveUp:   {input.KeyUp, "w", "k"},
	ActionMoveDown: {input.KeyDown, "s", "j"},
	ActionSelect:   {input.KeyEnter, input.KeySpace},
	ActionBack:     {input.KeyEsc, "p"},
}

var levelBindings = Bindings{
	ActionLeft:   {input.KeyLeft, "a", "h"},
	ActionRight:  {input.KeyRight, "d", "l"},
	ActionFire:   {input.KeySpace, input.KeyEnter, input.KeyUp, "w"},
	ActionPause:  {"p", input.KeyEsc},
	ActionFaster: {"+", "="},
	ActionSlower: {"-", "_"},
}

// install replaces the keyboard's bindings with b.
func (b Bindings) install(kb *input.Keyboard) {
	kb.ClearBindings()
	for action, keys := range b {
		kb.BindKeys(action, keys...)
	}
}

// Package input tracks keyboard and pointer state for the active session.
// The platform layer feeds raw signals in; game states query the trackers
// and subscribe to keyboard transitions.
package input

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/events"
)

// Keyboard bus channels.
const (
	KeyDownChannel = "key-down"
	KeyUpChannel   = "key-up"
)

// Well-known key identifiers, matching Bubble Tea's key names.
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
	KeyEnter = "enter"
	KeySpace = " "
	KeyEsc   = "esc"
)

// KeyEvent is published on every key transition.
type KeyEvent struct {
	Key    string
	Action string // bound action, empty when the key is unbound
	Repeat bool
	Time   time.Time
}

// Keyboard holds the set of pressed keys and the key-to-action table.
type Keyboard struct {
	bus      *events.Bus[KeyEvent]
	pressed  map[string]time.Time
	bindings map[string]string
}

// NewKeyboard creates a keyboard with no keys pressed and no bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		bus:      events.NewBus[KeyEvent](),
		pressed:  make(map[string]time.Time),
		bindings: make(map[string]string),
	}
}

// Events returns the bus key transitions are published on.
func (k *Keyboard) Events() *events.Bus[KeyEvent] {
	return k.bus
}

// BindKeys maps each key to action, replacing any previous binding.
func (k *Keyboard) BindKeys(action string, keys ...string) {
	for _, key := range keys {
		k.bindings[key] = action
	}
}

// UnbindKeys removes the bindings for keys.
func (k *Keyboard) UnbindKeys(keys ...string) {
	for _, key := range keys {
		delete(k.bindings, key)
	}
}

// ClearBindings removes every binding.
func (k *Keyboard) ClearBindings() {
	clear(k.bindings)
}

// ActionFor returns the action bound to key.
func (k *Keyboard) ActionFor(key string) (string, bool) {
	a, ok := k.bindings[key]
	return a, ok
}

// IsPressed reports whether key is currently held.
func (k *Keyboard) IsPressed(key string) bool {
	_, ok := k.pressed[key]
	return ok
}

// PressedAt returns when key went down.
func (k *Keyboard) PressedAt(key string) (time.Time, bool) {
	at, ok := k.pressed[key]
	return at, ok
}

// Pressed returns the held keys in sorted order.
func (k *Keyboard) Pressed() []string {
	keys := make([]string, 0, len(k.pressed))
	for key := range k.pressed {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// KeyDown records key as pressed, then publishes KeyDownChannel.
// A repeat keeps the original press time.
func (k *Keyboard) KeyDown(key string, repeat bool, at time.Time) error {
	if _, held := k.pressed[key]; !held || !repeat {
		k.pressed[key] = at
	}
	return k.bus.Emit(KeyDownChannel, k.event(key, repeat, at))
}

// KeyUp removes key from the pressed set, then publishes KeyUpChannel.
func (k *Keyboard) KeyUp(key string, at time.Time) error {
	delete(k.pressed, key)
	return k.bus.Emit(KeyUpChannel, k.event(key, false, at))
}

// ReleaseAll sends a key-up for every held key.
func (k *Keyboard) ReleaseAll(at time.Time) error {
	for _, key := range k.Pressed() {
		if err := k.KeyUp(key, at); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keyboard) event(key string, repeat bool, at time.Time) KeyEvent {
	return KeyEvent{
		Key:    key,
		Action: k.bindings[key],
		Repeat: repeat,
		Time:   at,
	}
}

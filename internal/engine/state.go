package engine

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// State is one exclusive screen of the game.
//
// Concrete states embed BaseState, which supplies the object list and
// no-op lifecycle hooks, and override UpdateState and RenderState.
type State interface {
	Name() string
	UpdateState(elapsed time.Duration) error
	RenderState(dst *core.Screen) error

	// OnEnter runs right after the state is pushed.
	OnEnter() error
	// OnExit runs right before the state is popped.
	OnExit() error
	// OnSleep and OnWakeUp bracket the time another state covers this one.
	OnSleep() error
	OnWakeUp() error
	// OnPause and OnResume bracket a global pause of the whole game.
	OnPause() error
	OnResume() error

	base() *BaseState
}

// BaseState holds what every state shares.
type BaseState struct {
	name    string
	objects []Entity
	asleep  bool
}

// NewBaseState returns a BaseState for a state called name.
func NewBaseState(name string) BaseState {
	return BaseState{name: name}
}

func (b *BaseState) base() *BaseState { return b }

// Name returns the state's display name.
func (b *BaseState) Name() string { return b.name }

// Asleep reports whether another state is covering this one.
func (b *BaseState) Asleep() bool { return b.asleep }

// AddGameObject appends e to the update and draw order.
func (b *BaseState) AddGameObject(e Entity) {
	b.objects = append(b.objects, e)
}

// RemoveGameObject removes e and reports whether it was present.
func (b *BaseState) RemoveGameObject(e Entity) bool {
	i := slices.Index(b.objects, e)
	if i < 0 {
		return false
	}
	b.objects = slices.Delete(b.objects, i, i+1)
	return true
}

// ReplaceGameObject puts next in old's slot, keeping draw order.
func (b *BaseState) ReplaceGameObject(old, next Entity) bool {
	i := slices.Index(b.objects, old)
	if i < 0 {
		return false
	}
	b.objects[i] = next
	return true
}

// ClearGameObjects empties the object list.
func (b *BaseState) ClearGameObjects() {
	b.objects = nil
}

// GameObjects returns a copy of the object list.
func (b *BaseState) GameObjects() []Entity {
	return slices.Clone(b.objects)
}

// UpdateObjects updates every object in insertion order.
func (b *BaseState) UpdateObjects(elapsed time.Duration) {
	for _, e := range b.objects {
		e.Update(elapsed)
	}
}

// RenderObjects draws every object in insertion order, so later objects
// end up on top.
func (b *BaseState) RenderObjects(dst *core.Screen) {
	for _, e := range b.objects {
		e.Draw(dst)
	}
}

// UpdateState must be provided by the concrete state.
func (b *BaseState) UpdateState(time.Duration) error {
	return &UnimplementedError{Type: b.name, Method: "UpdateState"}
}

// RenderState must be provided by the concrete state.
func (b *BaseState) RenderState(*core.Screen) error {
	return &UnimplementedError{Type: b.name, Method: "RenderState"}
}

func (b *BaseState) OnEnter() error  { return nil }
func (b *BaseState) OnExit() error   { return nil }
func (b *BaseState) OnSleep() error  { return nil }
func (b *BaseState) OnWakeUp() error { return nil }
func (b *BaseState) OnPause() error  { return nil }
func (b *BaseState) OnResume() error { return nil }

package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

// StateStack holds the game's states. Only the top one is live.
type StateStack struct {
	states []State
	logger *log.Logger
}

// NewStateStack creates an empty stack. A nil logger discards output.
func NewStateStack(logger *log.Logger) *StateStack {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &StateStack{logger: logger}
}

// Len returns the number of states.
func (s *StateStack) Len() int { return len(s.states) }

// Top returns the active state, or nil when the stack is empty.
func (s *StateStack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// Names lists the states bottom to top.
func (s *StateStack) Names() []string {
	names := make([]string, len(s.states))
	for i, st := range s.states {
		names[i] = st.Name()
	}
	return names
}

// Push places st on top and calls its OnEnter.
func (s *StateStack) Push(st State) error {
	st.base().asleep = false
	s.states = append(s.states, st)
	s.logger.Debug("push state", "state", st.Name(), "depth", len(s.states))
	if err := st.OnEnter(); err != nil {
		return fmt.Errorf("engine: enter %s: %w", st.Name(), err)
	}
	return nil
}

// Pop calls the top state's OnExit, then removes it.
func (s *StateStack) Pop() (State, error) {
	top := s.Top()
	if top == nil {
		return nil, ErrEmptyStack
	}
	err := top.OnExit()
	s.states = s.states[:len(s.states)-1]
	s.logger.Debug("pop state", "state", top.Name(), "depth", len(s.states))
	if err != nil {
		return top, fmt.Errorf("engine: exit %s: %w", top.Name(), err)
	}
	return top, nil
}

// Replace pops the top state and pushes st in its place.
func (s *StateStack) Replace(st State) error {
	if _, err := s.Pop(); err != nil {
		return err
	}
	return s.Push(st)
}

// Sleep marks the top state as covered and calls its OnSleep.
// Sleeping an already asleep state does nothing.
func (s *StateStack) Sleep() error {
	top := s.Top()
	if top == nil {
		return ErrEmptyStack
	}
	b := top.base()
	if b.asleep {
		return nil
	}
	b.asleep = true
	s.logger.Debug("sleep state", "state", top.Name())
	return top.OnSleep()
}

// WakeUp undoes Sleep on the top state.
func (s *StateStack) WakeUp() error {
	top := s.Top()
	if top == nil {
		return ErrEmptyStack
	}
	b := top.base()
	if !b.asleep {
		return nil
	}
	b.asleep = false
	s.logger.Debug("wake state", "state", top.Name())
	return top.OnWakeUp()
}

// Pause calls OnPause on the top state.
func (s *StateStack) Pause() error {
	top := s.Top()
	if top == nil {
		return ErrEmptyStack
	}
	return top.OnPause()
}

// Resume calls OnResume on the top state.
func (s *StateStack) Resume() error {
	top := s.Top()
	if top == nil {
		return ErrEmptyStack
	}
	return top.OnResume()
}

// Update advances the top state. An asleep top is left frozen.
// An empty stack is not an error: the driver may tick before the first push.
func (s *StateStack) Update(elapsed time.Duration) error {
	top := s.Top()
	if top == nil || top.base().asleep {
		return nil
	}
	return top.UpdateState(elapsed)
}

// Render draws the top state.
func (s *StateStack) Render(dst *core.Screen) error {
	top := s.Top()
	if top == nil {
		return nil
	}
	return top.RenderState(dst)
}

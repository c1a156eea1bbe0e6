package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned by stack operations that need a top state.
	ErrEmptyStack = errors.New("engine: state stack is empty")

	// ErrNoState is returned when a transition event carries no state.
	ErrNoState = errors.New("event carries no state")

	// ErrUnimplemented marks a state that is missing a required method.
	ErrUnimplemented = errors.New("engine: unimplemented")
)

// UnimplementedError names the state type and the method it failed to provide.
type UnimplementedError struct {
	Type   string
	Method string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("engine: %s does not implement %s", e.Type, e.Method)
}

// Unwrap lets errors.Is match ErrUnimplemented.
func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}

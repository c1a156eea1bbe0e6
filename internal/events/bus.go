// Package events implements a synchronous publish/subscribe bus with named
// channels. It is used both for session-level state transitions and for
// keyboard input fan-out.
//
// A Bus is not safe for concurrent use; the game runs on a single goroutine.
package events

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ErrInvalidArgument is returned for malformed channel names or nil handlers.
var ErrInvalidArgument = errors.New("invalid argument")

// Handler wraps a callback so it can be identified for unsubscription.
// Two handlers created from the same func are distinct.
type Handler[T any] struct {
	fn func(T)
}

// NewHandler wraps fn in a Handler.
func NewHandler[T any](fn func(T)) *Handler[T] {
	return &Handler[T]{fn: fn}
}

type channel[T any] struct {
	handlers []*Handler[T]
	// Subscriptions made while this channel is emitting.
	pending []*Handler[T]
	depth   int
}

func (c *channel[T]) index(h *Handler[T]) int {
	return slices.Index(c.handlers, h)
}

// Bus fans out payloads of type T to handlers registered on named channels.
type Bus[T any] struct {
	channels map[string]*channel[T]
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{channels: make(map[string]*channel[T])}
}

func validateChannel(name string) error {
	if name == "" {
		return fmt.Errorf("events: empty channel name: %w", ErrInvalidArgument)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("events: channel %q contains whitespace: %w", name, ErrInvalidArgument)
	}
	return nil
}

func validateHandler[T any](name string, h *Handler[T]) error {
	if h == nil || h.fn == nil {
		return fmt.Errorf("events: nil handler for channel %q: %w", name, ErrInvalidArgument)
	}
	return nil
}

// Subscribe registers h on the named channel. Registering the same handler
// twice is a no-op. A handler subscribed while the channel is emitting
// receives only later emissions.
func (b *Bus[T]) Subscribe(name string, h *Handler[T]) error {
	if err := validateChannel(name); err != nil {
		return err
	}
	if err := validateHandler(name, h); err != nil {
		return err
	}

	c, ok := b.channels[name]
	if !ok {
		c = &channel[T]{}
		b.channels[name] = c
	}
	if c.index(h) >= 0 || slices.Contains(c.pending, h) {
		return nil
	}
	if c.depth > 0 {
		c.pending = append(c.pending, h)
		return nil
	}
	c.handlers = append(c.handlers, h)
	return nil
}

// Unsubscribe removes h from the named channel. Removing a handler that is
// not registered does nothing. A handler removed mid-emission is not called
// for the rest of that emission.
func (b *Bus[T]) Unsubscribe(name string, h *Handler[T]) error {
	if err := validateChannel(name); err != nil {
		return err
	}
	if err := validateHandler(name, h); err != nil {
		return err
	}

	c, ok := b.channels[name]
	if !ok {
		return nil
	}
	if i := c.index(h); i >= 0 {
		c.handlers = slices.Delete(c.handlers, i, i+1)
	}
	if i := slices.Index(c.pending, h); i >= 0 {
		c.pending = slices.Delete(c.pending, i, i+1)
	}
	return nil
}

// UnsubscribeAll drops every handler on the named channel.
func (b *Bus[T]) UnsubscribeAll(name string) error {
	if err := validateChannel(name); err != nil {
		return err
	}
	if c, ok := b.channels[name]; ok {
		c.handlers = nil
		c.pending = nil
	}
	return nil
}

// Emit calls every handler on the channel in registration order.
// Emitting on a channel without subscribers is a no-op.
func (b *Bus[T]) Emit(name string, payload T) error {
	if err := validateChannel(name); err != nil {
		return err
	}

	c, ok := b.channels[name]
	if !ok || len(c.handlers) == 0 && len(c.pending) == 0 {
		return nil
	}

	c.depth++
	defer func() {
		c.depth--
		if c.depth == 0 && len(c.pending) > 0 {
			c.handlers = append(c.handlers, c.pending...)
			c.pending = nil
		}
	}()

	for _, h := range slices.Clone(c.handlers) {
		if c.index(h) < 0 {
			continue
		}
		h.fn(payload)
	}
	return nil
}

// Channels returns the names of channels with at least one handler, sorted.
func (b *Bus[T]) Channels() []string {
	names := make([]string, 0, len(b.channels))
	for name, c := range b.channels {
		if len(c.handlers)+len(c.pending) > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// HandlerCount returns the number of handlers active on a channel,
// including ones waiting for the current emission to finish.
func (b *Bus[T]) HandlerCount(name string) int {
	c, ok := b.channels[name]
	if !ok {
		return 0
	}
	return len(c.handlers) + len(c.pending)
}

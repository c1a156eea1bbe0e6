package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
	"github.com/vovakirdan/tui-brickbreaker/internal/events"
	"github.com/vovakirdan/tui-brickbreaker/internal/input"
)

// Game bus channels. States request transitions by emitting on these
// rather than touching the stack.
const (
	PushStateChannel   = "push-state"
	PopStateChannel    = "pop-state"
	ChangeStateChannel = "change-state"
	SleepStateChannel  = "sleep-state"
	WakeUpStateChannel = "wake-up-state"
	PauseChannel       = "pause-game"
	ResumeChannel      = "resume-game"
	RescaleChannel     = "rescale-canvas"
	StartChannel       = "start-game"
	QuitChannel        = "quit-game"
)

// Event is the payload of every game bus channel. State is set for push,
// change and start; Width and Height for rescale.
type Event struct {
	State  State
	Width  int
	Height int
}

// Options configures a Game.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Logger   *log.Logger
}

// Game is the session context handed to every state: the bus, the input
// trackers, the stack and the drawing surface.
type Game struct {
	events   *events.Bus[Event]
	keyboard *input.Keyboard
	pointer  *input.Pointer
	stack    *StateStack
	clock    *Clock
	screen   *core.Screen
	logger   *log.Logger

	width  int
	height int
	paused bool
	done   bool
	err    error
}

// NewGame wires a session together. Nothing runs until Start.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		events:   events.NewBus[Event](),
		keyboard: input.NewKeyboard(),
		stack:    NewStateStack(logger),
		screen:   core.NewScreen(opts.Width, opts.Height),
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
	}
	g.pointer = input.NewPointer(g)
	g.clock = NewClock(opts.TickRate, g.update, g.render)

	g.on(StartChannel, g.onStart)
	g.on(QuitChannel, g.onQuit)
	g.on(PauseChannel, g.onPause)
	g.on(ResumeChannel, g.onResume)
	g.on(PushStateChannel, g.onPushState)
	g.on(PopStateChannel, g.onPopState)
	g.on(ChangeStateChannel, g.onChangeState)
	g.on(SleepStateChannel, g.onSleepState)
	g.on(WakeUpStateChannel, g.onWakeUpState)
	return g
}

func (g *Game) on(channel string, fn func(Event) error) {
	// Channel names are constants, so this cannot fail.
	_ = g.events.Subscribe(channel, events.NewHandler(func(e Event) {
		g.Fail(fn(e))
	}))
}

// Events returns the game bus.
func (g *Game) Events() *events.Bus[Event] { return g.events }

// Keyboard returns the session keyboard.
func (g *Game) Keyboard() *input.Keyboard { return g.keyboard }

// Pointer returns the session pointer.
func (g *Game) Pointer() *input.Pointer { return g.pointer }

// Stack returns the state stack.
func (g *Game) Stack() *StateStack { return g.stack }

// Screen returns the surface states render into.
func (g *Game) Screen() *core.Screen { return g.screen }

// Logger returns the session logger.
func (g *Game) Logger() *log.Logger { return g.logger }

// TickInterval returns the time between simulation ticks.
func (g *Game) TickInterval() time.Duration { return g.clock.Interval() }

// Width returns the play surface width in cells.
func (g *Game) Width() int { return g.width }

// Height returns the play surface height in cells.
func (g *Game) Height() int { return g.height }

// Bounds places the play surface at the terminal origin.
func (g *Game) Bounds() core.Box {
	return core.Box{Width: float64(g.width), Height: float64(g.height)}
}

// Paused reports whether the game is globally paused.
func (g *Game) Paused() bool { return g.paused }

// Done reports whether the session has quit.
func (g *Game) Done() bool { return g.done }

// Err returns the first error raised by a transition or frame.
func (g *Game) Err() error { return g.err }

// Fail records err unless an earlier error is already pending.
func (g *Game) Fail(err error) {
	if err != nil && g.err == nil {
		g.logger.Error("game failed", "err", err)
		g.err = err
	}
}

// Emit publishes e on channel and returns the pending session error.
func (g *Game) Emit(channel string, e Event) error {
	g.Fail(g.events.Emit(channel, e))
	return g.err
}

// Start pushes the first state and arms the clock.
func (g *Game) Start(first State) error {
	return g.Emit(StartChannel, Event{State: first})
}

// Quit pops every state and stops the clock.
func (g *Game) Quit() error {
	return g.Emit(QuitChannel, Event{})
}

// Pause freezes the whole game. Rendering continues.
func (g *Game) Pause() error {
	return g.Emit(PauseChannel, Event{})
}

// Resume undoes Pause.
func (g *Game) Resume() error {
	return g.Emit(ResumeChannel, Event{})
}

// Resize changes the surface and tells subscribers to rescale.
func (g *Game) Resize(width, height int) error {
	if width == g.width && height == g.height {
		return g.err
	}
	g.width = width
	g.height = height
	g.screen.Resize(width, height)
	g.logger.Debug("rescale", "width", width, "height", height)
	return g.Emit(RescaleChannel, Event{Width: width, Height: height})
}

// Step feeds the timing signal into the clock.
func (g *Game) Step(now time.Time) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return g.clock.Step(now)
}

func (g *Game) update(elapsed time.Duration) error {
	if g.err != nil {
		return g.err
	}
	if !g.paused {
		g.Fail(g.stack.Update(elapsed))
	}
	return g.err
}

func (g *Game) render() error {
	g.screen.Clear()
	g.Fail(g.stack.Render(g.screen))
	return g.err
}

func (g *Game) onStart(e Event) error {
	if e.State == nil {
		return fmt.Errorf("engine: %s: %w", StartChannel, ErrNoState)
	}
	g.logger.Info("starting game", "state", e.State.Name(), "width", g.width, "height", g.height)
	if err := g.stack.Push(e.State); err != nil {
		return err
	}
	g.done = false
	g.pointer.Attach()
	g.clock.Start()
	return nil
}

func (g *Game) onQuit(Event) error {
	g.logger.Info("quitting game")
	g.clock.Stop()
	g.pointer.Detach()
	g.done = true
	for g.stack.Len() > 0 {
		if _, err := g.stack.Pop(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) onPause(Event) error {
	if g.paused {
		return nil
	}
	g.paused = true
	if g.stack.Len() == 0 {
		return nil
	}
	return g.stack.Pause()
}

func (g *Game) onResume(Event) error {
	if !g.paused {
		return nil
	}
	g.paused = false
	g.pointer.Reset()
	if g.stack.Len() == 0 {
		return nil
	}
	return g.stack.Resume()
}

func (g *Game) onPushState(e Event) error {
	if e.State == nil {
		return fmt.Errorf("engine: %s: %w", PushStateChannel, ErrNoState)
	}
	g.pointer.Reset()
	return g.stack.Push(e.State)
}

func (g *Game) onPopState(Event) error {
	g.pointer.Reset()
	_, err := g.stack.Pop()
	return err
}

func (g *Game) onChangeState(e Event) error {
	if e.State == nil {
		return fmt.Errorf("engine: %s: %w", ChangeStateChannel, ErrNoState)
	}
	g.pointer.Reset()
	return g.stack.Replace(e.State)
}

func (g *Game) onSleepState(Event) error {
	return g.stack.Sleep()
}

func (g *Game) onWakeUpState(Event) error {
	return g.stack.WakeUp()
}

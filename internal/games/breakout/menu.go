package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
	"github.com/vovakirdan/tui-brickbreaker/internal/engine"
	"github.com/vovakirdan/tui-brickbreaker/internal/events"
	"github.com/vovakirdan/tui-brickbreaker/internal/input"
	"github.com/vovakirdan/tui-brickbreaker/internal/ui"
)

// menu is the shared body of every button-driven state. Keys move the
// selection; hovering selects and clicking presses.
type menu struct {
	engine.BaseState

	env     Env
	game    *engine.Game
	buttons *ui.ButtonGroup
	onBack  func()

	keys *events.Handler[input.KeyEvent]
	seen time.Time
}

func newMenu(name string, env Env, title string, titleColor core.Color, buttonsTop float64) menu {
	m := menu{
		BaseState: engine.NewBaseState(name),
		env:       env,
		game:      env.Game,
		buttons:   ui.NewButtonGroup(env.Game, buttonsTop),
	}
	m.AddGameObject(ui.NewLabel(env.Game, title, 0.2, titleColor))
	return m
}

// emit publishes a transition. Failures are recorded on the game.
func emit(g *engine.Game, channel string, st engine.State) {
	_ = g.Emit(channel, engine.Event{State: st})
}

func (m *menu) subscribe() error {
	if m.keys == nil {
		m.keys = events.NewHandler(m.onKey)
	}
	m.seen = m.game.Pointer().LastUpdated()
	menuBindings.install(m.game.Keyboard())
	if err := m.game.Keyboard().Events().Subscribe(input.KeyDownChannel, m.keys); err != nil {
		return fmt.Errorf("%s: subscribe keys: %w", m.Name(), err)
	}
	return nil
}

func (m *menu) unsubscribe() error {
	if m.keys == nil {
		return nil
	}
	if err := m.game.Keyboard().Events().Unsubscribe(input.KeyDownChannel, m.keys); err != nil {
		return fmt.Errorf("%s: unsubscribe keys: %w", m.Name(), err)
	}
	return nil
}

func (m *menu) onKey(e input.KeyEvent) {
	switch e.Action {
	case ActionMoveUp:
		m.buttons.MoveUp()
	case ActionMoveDown:
		m.buttons.MoveDown()
	case ActionSelect:
		if !e.Repeat {
			m.buttons.SelectCurrent()
		}
	case ActionBack:
		if !e.Repeat && m.onBack != nil {
			m.onBack()
		}
	}
}

// handlePointer selects the hovered button when the pointer has moved and
// presses the selection on a click over the group.
func (m *menu) handlePointer() {
	p := m.game.Pointer()
	if at := p.LastUpdated(); !at.Equal(m.seen) {
		m.seen = at
		m.buttons.HoverAt(p.X(), p.Y())
	}
	if m.buttons.IntersectsXY(p.X(), p.Y()) && p.ConsumeClick() {
		m.buttons.SelectCurrent()
	}
}

func (m *menu) OnEnter() error { return m.subscribe() }
func (m *menu) OnExit() error  { return m.unsubscribe() }
func (m *menu) OnSleep() error { return m.unsubscribe() }

func (m *menu) OnWakeUp() error { return m.subscribe() }
func (m *menu) OnPause() error  { return m.unsubscribe() }

func (m *menu) OnResume() error {
	if m.Asleep() {
		return nil
	}
	return m.subscribe()
}

func (m *menu) UpdateState(elapsed time.Duration) error {
	m.handlePointer()
	m.UpdateObjects(elapsed)
	return nil
}

func (m *menu) RenderState(dst *core.Screen) error {
	m.RenderObjects(dst)
	return nil
}

// MainMenu is the first state: start a run or quit.
type MainMenu struct {
	menu
}

// NewMainMenu builds the title screen.
func NewMainMenu(env Env) *MainMenu {
	m := &MainMenu{menu: newMenu("main-menu", env, "B R I C K   B R E A K E R", core.ColorBrightCyan, 0.45)}
	m.AddGameObject(ui.NewLabel(env.Game, fmt.Sprintf("%d levels", len(env.Levels)), 0.3, core.ColorGray))
	m.buttons.Add(ui.NewButton("Start", m.start))
	m.buttons.Add(ui.NewButton("Quit", m.quit))
	m.AddGameObject(m.buttons)
	m.AddGameObject(ui.NewLabel(env.Game, "↑/↓ choose · enter select · mouse works too", 0.9, core.ColorGray))
	return m
}

func (m *MainMenu) start() {
	emit(m.game, engine.SleepStateChannel, nil)
	emit(m.game, engine.PushStateChannel, NewRunningGame(m.env))
}

func (m *MainMenu) quit() {
	_ = m.game.Quit()
}

// PauseMenu covers a sleeping level.
type PauseMenu struct {
	menu
}

// NewPauseMenu builds the pause overlay.
func NewPauseMenu(env Env) *PauseMenu {
	m := &PauseMenu{menu: newMenu("pause-menu", env, "Paused", core.ColorBrightYellow, 0.4)}
	m.buttons.Add(ui.NewButton("Resume", m.resume))
	m.buttons.Add(ui.NewButton("To Main Menu", m.toMainMenu))
	m.AddGameObject(m.buttons)
	m.AddGameObject(ui.NewLabel(env.Game, "p or esc to resume", 0.9, core.ColorGray))
	m.onBack = m.resume
	return m
}

func (m *PauseMenu) resume() {
	emit(m.game, engine.PopStateChannel, nil)
	emit(m.game, engine.WakeUpStateChannel, nil)
}

func (m *PauseMenu) toMainMenu() {
	emit(m.game, engine.PopStateChannel, nil)
	emit(m.game, engine.PopStateChannel, nil)
	emit(m.game, engine.WakeUpStateChannel, nil)
}

// ResultMenu ends a run with its final score. It sits directly above the
// sleeping main menu.
type ResultMenu struct {
	menu
	score int
}

// NewGameOver builds the screen shown when the last life is lost.
func NewGameOver(env Env, score int) *ResultMenu {
	return newResultMenu("game-over", env, "Game Over", core.ColorBrightRed, score)
}

// NewWinGame builds the screen shown when the last level is cleared.
func NewWinGame(env Env, score int) *ResultMenu {
	return newResultMenu("win-game", env, "You Win!", core.ColorBrightGreen, score)
}

func newResultMenu(name string, env Env, title string, color core.Color, score int) *ResultMenu {
	m := &ResultMenu{menu: newMenu(name, env, title, color, 0.5), score: score}
	m.AddGameObject(ui.NewLabel(env.Game, fmt.Sprintf("Final score: %d", score), 0.33, core.ColorBrightYellow))
	m.buttons.Add(ui.NewButton("To Main Menu", m.toMainMenu))
	m.AddGameObject(m.buttons)
	m.onBack = m.toMainMenu
	return m
}

// Score returns the final score shown.
func (m *ResultMenu) Score() int { return m.score }

func (m *ResultMenu) toMainMenu() {
	emit(m.game, engine.PopStateChannel, nil)
	emit(m.game, engine.WakeUpStateChannel, nil)
}

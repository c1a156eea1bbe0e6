package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brickbreaker/internal/engine"
	"github.com/vovakirdan/tui-brickbreaker/internal/input"
)

// footerRows is the number of terminal rows kept below the play surface.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game     *engine.Game
	keys     KeyMap
	help     help.Model
	held     *keyTracker
	showHelp bool
	mouse    bool // Left button held
	quitting bool
	err      error

	// now is replaced in tests.
	now func() time.Time
}

// NewModel wraps an already started game.
func NewModel(game *engine.Game) Model {
	return Model{
		game: game,
		keys: DefaultKeyMap(),
		help: help.New(),
		held: newKeyTracker(),
		now:  time.Now,
	}
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		return m.check(m.game.Resume())

	case tea.BlurMsg:
		return m.handleBlur()

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// check ends the program on a session error.
func (m Model) check(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if err := m.game.Quit(); err != nil {
			m.err = err
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	name, ok := KeyName(msg)
	if !ok {
		return m, nil
	}
	now := m.now()
	repeat := m.held.press(name, now)
	return m.check(m.game.Keyboard().KeyDown(name, repeat, now))
}

// handleMouse turns terminal mouse reports into pointer signals. A release
// after a press also produces a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.game.Pointer()
	evt := input.PointerEvent{X: float64(msg.X), Y: float64(msg.Y), Time: m.now()}

	switch msg.Action {
	case tea.MouseActionMotion:
		evt.Kind = input.PointerMove
		p.Handle(evt)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.mouse = true
		evt.Kind = input.PointerDown
		p.Handle(evt)
	case tea.MouseActionRelease:
		evt.Kind = input.PointerUp
		p.Handle(evt)
		if m.mouse {
			m.mouse = false
			evt.Kind = input.PointerClick
			p.Handle(evt)
		}
	}
	return m, nil
}

// handleBlur releases every held key, since no repeats arrive while the
// terminal is unfocused, and pauses the game.
func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	now := m.now()
	m.held.reset()
	if err := m.game.Keyboard().ReleaseAll(now); err != nil {
		return m.check(err)
	}
	return m.check(m.game.Pause())
}

// handleResize gives the game everything above the footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	return m.check(m.game.Resize(msg.Width, max(1, msg.Height-footerRows)))
}

// handleTick releases expired keys and advances the game clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, name := range m.held.expired(now) {
		if err := m.game.Keyboard().KeyUp(name, now); err != nil {
			return m.check(err)
		}
	}

	if _, err := m.game.Step(now); err != nil {
		return m.check(err)
	}
	if m.game.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.game.TickInterval())
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".brickbreaker", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("brickbreaker_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.game.Screen().String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := footerStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.showHelp {
		footer = footerStyle.Render(fmt.Sprintf("%s · %dx%d · %d keys held",
			m.game.Stack().Names(), m.game.Width(), m.game.Height(), m.held.held()))
	}
	return RenderScreen(m.game.Screen(), m.game.Paused()) + "\n" + footer
}

// Run starts the Bubble Tea program for a started game and blocks until it
// exits.
func Run(game *engine.Game, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}, opts...)

	p := tea.NewProgram(NewModel(game), opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return game.Err()
}

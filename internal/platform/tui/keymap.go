package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminals only report presses. A key counts as released once no repeat
// has arrived for a while: longer after the first press, which the
// terminal follows with its autorepeat delay.
const (
	firstReleaseDelay  = 550 * time.Millisecond
	repeatReleaseDelay = 120 * time.Millisecond
)

// KeyMap holds the bindings handled by the driver itself. Every other key
// is forwarded to the game keyboard.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Screenshot, k.Quit}
}

// FullHelp returns all bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Screenshot, k.Quit}}
}

// DefaultKeyMap returns default driver bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyName converts a key message to the name the game keyboard binds.
// Arrow keys, enter and esc keep their Bubble Tea names; space is " ".
func KeyName(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return "", false
		}
		return string(msg.Runes[0]), true
	case tea.KeySpace:
		return " ", true
	case tea.KeyUp:
		return "up", true
	case tea.KeyDown:
		return "down", true
	case tea.KeyLeft:
		return "left", true
	case tea.KeyRight:
		return "right", true
	case tea.KeyEnter:
		return "enter", true
	case tea.KeyEsc:
		return "esc", true
	}
	return "", false
}

// keyTracker synthesizes releases for held keys.
type keyTracker struct {
	deadlines map[string]time.Time
}

func newKeyTracker() *keyTracker {
	return &keyTracker{deadlines: make(map[string]time.Time)}
}

// press records a press at now and reports whether it repeats a key that
// is still held.
func (t *keyTracker) press(name string, now time.Time) bool {
	_, held := t.deadlines[name]
	delay := firstReleaseDelay
	if held {
		delay = repeatReleaseDelay
	}
	t.deadlines[name] = now.Add(delay)
	return held
}

// expired removes and returns, sorted, the keys whose release is due.
func (t *keyTracker) expired(now time.Time) []string {
	var out []string
	for name, deadline := range t.deadlines {
		if !now.Before(deadline) {
			out = append(out, name)
			delete(t.deadlines, name)
		}
	}
	sort.Strings(out)
	return out
}

// reset forgets every held key.
func (t *keyTracker) reset() {
	clear(t.deadlines)
}

// held returns the number of keys currently considered down.
func (t *keyTracker) held() int { return len(t.deadlines) }

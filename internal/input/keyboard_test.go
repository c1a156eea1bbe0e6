package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/events"
)

func TestKeyboardPressedBeforeEmit(t *testing.T) {
	kb := NewKeyboard()
	now := time.Unix(100, 0)

	var sawDown, sawUp bool
	_ = kb.Events().Subscribe(KeyDownChannel, events.NewHandler(func(e KeyEvent) {
		sawDown = kb.IsPressed(e.Key)
	}))
	_ = kb.Events().Subscribe(KeyUpChannel, events.NewHandler(func(e KeyEvent) {
		sawUp = kb.IsPressed(e.Key)
	}))

	if err := kb.KeyDown("a", false, now); err != nil {
		t.Fatalf("KeyDown: %v", err)
	}
	if !sawDown {
		t.Error("subscriber saw key as not pressed during key-down")
	}

	if err := kb.KeyUp("a", now); err != nil {
		t.Fatalf("KeyUp: %v", err)
	}
	if sawUp {
		t.Error("subscriber saw key as pressed during key-up")
	}
}

func TestKeyboardBindings(t *testing.T) {
	kb := NewKeyboard()
	kb.BindKeys("left", "a", KeyLeft)
	kb.BindKeys("right", "d")

	var got []KeyEvent
	_ = kb.Events().Subscribe(KeyDownChannel, events.NewHandler(func(e KeyEvent) {
		got = append(got, e)
	}))

	at := time.Unix(5, 0)
	_ = kb.KeyDown("a", false, at)
	_ = kb.KeyDown("x", false, at)
	kb.UnbindKeys("a")
	_ = kb.KeyDown("a", true, at)

	want := []KeyEvent{
		{Key: "a", Action: "left", Time: at},
		{Key: "x", Action: "", Time: at},
		{Key: "a", Action: "", Repeat: true, Time: at},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %+v\nexpected %+v", got, want)
	}

	if a, ok := kb.ActionFor(KeyLeft); !ok || a != "left" {
		t.Errorf("ActionFor(left) = %q, %v", a, ok)
	}
	kb.ClearBindings()
	if _, ok := kb.ActionFor("d"); ok {
		t.Error("ClearBindings left a binding behind")
	}
}

func TestKeyboardRebindWhileHeld(t *testing.T) {
	kb := NewKeyboard()
	emitted := 0
	_ = kb.Events().Subscribe(KeyDownChannel, events.NewHandler(func(KeyEvent) { emitted++ }))

	_ = kb.KeyDown("a", false, time.Now())
	kb.BindKeys("fire", "a")
	if emitted != 1 {
		t.Errorf("rebinding emitted an event: %d emissions", emitted)
	}
}

func TestKeyboardRepeatKeepsPressTime(t *testing.T) {
	kb := NewKeyboard()
	first := time.Unix(1, 0)
	_ = kb.KeyDown("left", false, first)
	_ = kb.KeyDown("left", true, time.Unix(2, 0))

	if at, ok := kb.PressedAt("left"); !ok || !at.Equal(first) {
		t.Errorf("PressedAt = %v, %v; expected %v", at, ok, first)
	}
}

func TestKeyboardReleaseAll(t *testing.T) {
	kb := NewKeyboard()
	_ = kb.KeyDown("b", false, time.Now())
	_ = kb.KeyDown("a", false, time.Now())

	var released []string
	_ = kb.Events().Subscribe(KeyUpChannel, events.NewHandler(func(e KeyEvent) {
		released = append(released, e.Key)
	}))

	if err := kb.ReleaseAll(time.Now()); err != nil {
		t.Fatalf("ReleaseAll: %v", err)
	}
	if !reflect.DeepEqual(released, []string{"a", "b"}) {
		t.Errorf("released = %v", released)
	}
	if len(kb.Pressed()) != 0 {
		t.Errorf("keys still pressed: %v", kb.Pressed())
	}
}

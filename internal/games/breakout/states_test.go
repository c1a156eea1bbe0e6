package breakout

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/core"
	"github.com/vovakirdan/tui-brickbreaker/internal/engine"
	"github.com/vovakirdan/tui-brickbreaker/internal/input"
	"github.com/vovakirdan/tui-brickbreaker/internal/levels"
)

func oneBrick(id string) levels.Level {
	return levels.Level{ID: id, Name: id, Grid: [][]int{{1}}}
}

// session drives a game at a fixed 40x24 size through its public inputs.
type session struct {
	t   *testing.T
	env Env
	g   *engine.Game
	now time.Time
}

func newSession(t *testing.T, lvls ...levels.Level) *session {
	t.Helper()
	g := engine.NewGame(engine.Options{Width: 40, Height: 24, TickRate: 60})
	env := Env{Game: g, Config: config.DefaultBreakoutConfig(), Levels: lvls}
	if err := Start(env); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := &session{t: t, env: env, g: g, now: time.Unix(0, 0)}
	s.tick(1) // primes the clock
	return s
}

func (s *session) tick(n int) {
	s.t.Helper()
	for range n {
		s.now = s.now.Add(s.g.TickInterval())
		if _, err := s.g.Step(s.now); err != nil {
			s.t.Fatalf("Step: %v", err)
		}
	}
}

func (s *session) press(key string) {
	s.t.Helper()
	kb := s.g.Keyboard()
	if err := kb.KeyDown(key, false, s.now); err != nil {
		s.t.Fatalf("KeyDown(%q): %v", key, err)
	}
	if err := kb.KeyUp(key, s.now); err != nil {
		s.t.Fatalf("KeyUp(%q): %v", key, err)
	}
	if err := s.g.Err(); err != nil {
		s.t.Fatalf("after %q: %v", key, err)
	}
}

func (s *session) names() []string { return s.g.Stack().Names() }

func (s *session) expectStack(want ...string) {
	s.t.Helper()
	if got := s.names(); !slices.Equal(got, want) {
		s.t.Fatalf("stack = %v, want %v", got, want)
	}
}

func (s *session) running() *RunningGame {
	s.t.Helper()
	r, ok := s.g.Stack().Top().(*RunningGame)
	if !ok {
		s.t.Fatalf("top = %v, want running-game", s.names())
	}
	return r
}

// launch waits out the aim cooldown and fires straight up.
func (s *session) launch() *RunningGame {
	s.t.Helper()
	r := s.running()
	s.tick(s.env.Config.Aim.CooldownTicks)
	s.press(input.KeySpace)
	s.tick(1)
	if r.Aiming() {
		s.t.Fatal("ball did not launch")
	}
	return r
}

func TestStartValidatesEnv(t *testing.T) {
	g := engine.NewGame(engine.Options{Width: 40, Height: 24})
	cfg := config.DefaultBreakoutConfig()

	if err := Start(Env{Game: g, Config: cfg}); !errors.Is(err, ErrNoLevels) {
		t.Fatalf("err = %v, want ErrNoLevels", err)
	}
	if err := Start(Env{Game: g, Config: cfg, Levels: []levels.Level{oneBrick("a")}, StartLevel: 3}); err == nil {
		t.Fatal("expected out of range start level to fail")
	}
	if g.Stack().Len() != 0 {
		t.Fatal("failed Start must not push anything")
	}
}

func TestMainMenuStartsAndQuits(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.expectStack("main-menu")

	s.press(input.KeyEnter)
	s.expectStack("main-menu", "running-game")
	r := s.running()
	if !r.Aiming() || r.Player().Lives() != 3 || r.Player().Score() != 0 {
		t.Fatalf("fresh run: aiming=%v lives=%d score=%d", r.Aiming(), r.Player().Lives(), r.Player().Score())
	}

	// Back on the menu, move to Quit and take it.
	s.press("p")
	s.press(input.KeyDown)
	s.press(input.KeyEnter)
	s.expectStack("main-menu")
	s.press(input.KeyDown)
	s.press(input.KeyEnter)
	if !s.g.Done() || s.g.Stack().Len() != 0 {
		t.Fatalf("quit: done=%v stack=%v", s.g.Done(), s.names())
	}
}

func TestClearingLastLevelWins(t *testing.T) {
	s := newSession(t, oneBrick("only"))
	s.press(input.KeyEnter)
	r := s.launch()

	r.Ball().Position = core.V(20, 6)
	r.Ball().Velocity = core.V(0, -0.6)
	s.tick(20)

	s.expectStack("main-menu", "win-game")
	win := s.g.Stack().Top().(*ResultMenu)
	if win.Score() != 1 {
		t.Fatalf("score = %d, want 1", win.Score())
	}

	s.press(input.KeyEnter)
	s.expectStack("main-menu")
	if top := s.g.Stack().Top().(*MainMenu); top.Asleep() {
		t.Fatal("main menu should be awake")
	}
}

func TestClearingLevelAdvances(t *testing.T) {
	s := newSession(t, oneBrick("first"), oneBrick("second"))
	s.press(input.KeyEnter)
	r := s.launch()

	r.Ball().Position = core.V(20, 6)
	r.Ball().Velocity = core.V(0, -0.6)
	s.tick(20)

	s.expectStack("main-menu", "running-game")
	if got := r.Field().Level().ID; got != "second" {
		t.Fatalf("level = %q, want second", got)
	}
	if !r.Aiming() || r.Player().Score() != 1 {
		t.Fatalf("after clear: aiming=%v score=%d", r.Aiming(), r.Player().Score())
	}
	if slices.Index(r.GameObjects(), engine.Entity(r.Field())) < 0 {
		t.Fatal("new field not among game objects")
	}
}

func TestThreeMissesEndTheGame(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.running()

	for miss := 1; miss <= 3; miss++ {
		s.launch()
		// Far left of the centered paddle, heading down.
		r.Ball().Position = core.V(1.5, 10)
		r.Ball().Velocity = core.V(0, 0.6)
		s.tick(60)

		if miss < 3 {
			if want := 3 - miss; r.Player().Lives() != want {
				t.Fatalf("miss %d: lives = %d, want %d", miss, r.Player().Lives(), want)
			}
			if !r.Aiming() {
				t.Fatalf("miss %d: ball should be back on the paddle", miss)
			}
		}
	}

	if r.Player().Lives() != 0 {
		t.Fatalf("lives = %d, want 0", r.Player().Lives())
	}
	s.expectStack("main-menu", "game-over")
	if over := s.g.Stack().Top().(*ResultMenu); over.Score() != 0 {
		t.Fatalf("score = %d, want 0", over.Score())
	}
}

func TestPaddleReturnsBall(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.launch()

	r.Ball().Position = core.V(r.Paddle().CenterX(), 15)
	r.Ball().Velocity = core.V(0, 0.6)
	s.tick(30)

	if r.Player().Lives() != 3 {
		t.Fatalf("lives = %d, want 3", r.Player().Lives())
	}
	if r.Ball().Velocity.Y >= 0 {
		t.Fatalf("ball should be heading up, velocity %v", r.Ball().Velocity)
	}
}

func TestPauseMenuFreezesAndResumes(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.launch()
	v := r.Ball().Velocity

	s.press("p")
	s.expectStack("main-menu", "running-game", "pause-menu")
	if r.Ball().Moving() {
		t.Fatal("ball should be parked while paused")
	}
	pos := r.Ball().Position
	s.tick(10)
	if r.Ball().Position != pos {
		t.Fatal("ball moved under the pause menu")
	}

	s.press("p")
	s.expectStack("main-menu", "running-game")
	if r.Ball().Velocity != v {
		t.Fatalf("velocity = %v, want %v", r.Ball().Velocity, v)
	}
}

func TestPauseMenuToMainMenu(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	s.press(input.KeyEsc)

	s.press(input.KeyDown)
	s.press(input.KeyEnter)
	s.expectStack("main-menu")

	// A new run starts from scratch.
	s.press(input.KeyEnter)
	if r := s.running(); r.Player().Lives() != 3 {
		t.Fatalf("lives = %d, want 3", r.Player().Lives())
	}
}

func TestGlobalPauseParksBall(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.launch()
	v := r.Ball().Velocity

	if err := s.g.Pause(); err != nil {
		t.Fatal(err)
	}
	if r.Ball().Moving() {
		t.Fatal("ball should stop on pause")
	}
	s.press(input.KeyRight)
	if r.Paddle().RightPressed {
		t.Fatal("keys must be ignored while paused")
	}
	if err := s.g.Resume(); err != nil {
		t.Fatal(err)
	}
	if r.Ball().Velocity != v {
		t.Fatalf("velocity = %v, want %v", r.Ball().Velocity, v)
	}
}

func TestAimingControls(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.running()
	cfg := s.env.Config.Aim

	s.press(input.KeyRight)
	if r.AimAngle() != cfg.StepDeg {
		t.Fatalf("aim = %v, want %v", r.AimAngle(), cfg.StepDeg)
	}
	for range 50 {
		s.press(input.KeyLeft)
	}
	if r.AimAngle() != -cfg.MaxAngleDeg {
		t.Fatalf("aim = %v, want %v", r.AimAngle(), -cfg.MaxAngleDeg)
	}

	// Fire before the cooldown is dropped.
	s.press(input.KeySpace)
	s.tick(1)
	if !r.Aiming() {
		t.Fatal("fire honored before cooldown")
	}

	s.tick(cfg.CooldownTicks)
	s.press(input.KeySpace)
	s.tick(1)
	if r.Aiming() || r.Ball().Velocity.X >= 0 {
		t.Fatalf("expected a launch to the left, velocity %v", r.Ball().Velocity)
	}
}

func TestPointerAimsAndFires(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.running()
	s.tick(s.env.Config.Aim.CooldownTicks)

	ball := r.Ball().Position
	p := s.g.Pointer()
	p.Handle(input.PointerEvent{Kind: input.PointerMove, X: ball.X + 4, Y: ball.Y - 4, Time: s.now})
	s.tick(1)
	if r.AimAngle() <= 0 {
		t.Fatalf("aim = %v, want right of vertical", r.AimAngle())
	}

	p.Handle(input.PointerEvent{Kind: input.PointerClick, X: ball.X + 4, Y: ball.Y - 4, Time: s.now})
	s.tick(1)
	if r.Aiming() {
		t.Fatal("click should launch")
	}
}

func TestResizeKeepsBricksInProportion(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	r := s.running()
	before := r.Field().Brick(0, 0).Box()

	if err := s.g.Resize(80, 48); err != nil {
		t.Fatal(err)
	}
	after := r.Field().Brick(0, 0).Box()
	if after.X != before.X*2 || after.Width != before.Width*2 {
		t.Fatalf("brick %+v, want doubled %+v", after, before)
	}
	if got, want := r.Ball().Position.Y, r.Paddle().Y()-r.Ball().Radius; got != want {
		t.Fatalf("aiming ball y = %v, want %v", got, want)
	}
}

func TestRunningGameRenders(t *testing.T) {
	s := newSession(t, oneBrick("a"))
	s.press(input.KeyEnter)
	s.tick(1)

	screen := s.g.Screen()
	r := s.running()
	paddle := r.Paddle().Box().Cells()
	if got := screen.Get(paddle.X+1, paddle.Y); got != PaddleChar {
		t.Fatalf("paddle cell = %q", got)
	}
	brick := r.Field().Brick(0, 0).Box().Cells()
	if got := screen.GetCell(brick.X, brick.Y); got.Rune != BrickGlyphs[0] || got.Color != core.BrickColor(1) {
		t.Fatalf("brick cell = %+v", got)
	}
}

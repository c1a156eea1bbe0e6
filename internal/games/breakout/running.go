package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/core"
	"github.com/vovakirdan/tui-brickbreaker/internal/engine"
	"github.com/vovakirdan/tui-brickbreaker/internal/events"
	"github.com/vovakirdan/tui-brickbreaker/internal/input"
)

// hudRows is the number of rows reserved at the top for the HUD.
const hudRows = 1

type phase int

const (
	phaseAiming phase = iota
	phaseLaunched
)

// footer is a single centered line on the bottom row.
type footer struct {
	Text string
}

func (f *footer) Update(time.Duration) {}

func (f *footer) Draw(dst *core.Screen) {
	if f.Text != "" {
		dst.DrawTextCenteredColored(dst.Height()-1, f.Text, core.ColorGray)
	}
}

// RunningGame plays the campaign from env.StartLevel. Each life starts in
// the aiming phase with the ball parked above the paddle; firing launches it.
type RunningGame struct {
	engine.BaseState

	env        Env
	game       *engine.Game
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	player *Player
	field  *BrickField
	paddle *Paddle
	ball   *Ball
	guide  *AimGuide
	footer *footer

	levelIndex int
	phase      phase
	aim        float64 // Degrees from straight up
	aimTicks   int
	fire       bool
	ticks      int
	lastHit    *Brick
	seen       time.Time
	width      int
	height     int

	sleepVelocity core.Vec2
	pauseVelocity core.Vec2

	keyDown *events.Handler[input.KeyEvent]
	keyUp   *events.Handler[input.KeyEvent]
	rescale *events.Handler[engine.Event]
}

// NewRunningGame builds a fresh run with full lives and zero score.
func NewRunningGame(env Env) *RunningGame {
	g := env.Game
	cfg := env.Config
	r := &RunningGame{
		BaseState:  engine.NewBaseState("running-game"),
		env:        env,
		game:       g,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		player:     NewPlayer(cfg.Gameplay.Lives),
		paddle:     NewPaddle(g, cfg.Paddle),
		ball:       NewBall(core.Vec2{}, cfg.Ball.Radius, cfg.Ball.AspectY),
		guide:      NewAimGuide(cfg.Aim.GuideLength, cfg.Ball.AspectY),
		footer:     &footer{},
		levelIndex: env.StartLevel,
		width:      g.Width(),
		height:     g.Height(),
	}
	r.field = NewBrickField(env.Levels[r.levelIndex], cfg.Bricks, g)
	r.player.Level = r.levelTitle()

	r.AddGameObject(r.player)
	r.AddGameObject(r.field)
	r.AddGameObject(r.paddle)
	r.AddGameObject(r.guide)
	r.AddGameObject(r.ball)
	r.AddGameObject(r.footer)

	r.keyDown = events.NewHandler(r.onKeyDown)
	r.keyUp = events.NewHandler(r.onKeyUp)
	r.rescale = events.NewHandler(r.onRescale)

	r.enterAiming()
	return r
}

// Player returns the score and lives tracker.
func (r *RunningGame) Player() *Player { return r.player }

// Ball returns the ball.
func (r *RunningGame) Ball() *Ball { return r.ball }

// Paddle returns the paddle.
func (r *RunningGame) Paddle() *Paddle { return r.paddle }

// Field returns the current level's bricks.
func (r *RunningGame) Field() *BrickField { return r.field }

// Aiming reports whether the ball is waiting to be launched.
func (r *RunningGame) Aiming() bool { return r.phase == phaseAiming }

// AimAngle returns the current aim in degrees from straight up.
func (r *RunningGame) AimAngle() float64 { return r.aim }

func (r *RunningGame) levelTitle() string {
	lvl := r.env.Levels[r.levelIndex]
	return fmt.Sprintf("%d/%d %s", r.levelIndex+1, len(r.env.Levels), lvl.Name)
}

func (r *RunningGame) OnEnter() error {
	lvl := r.field.Level()
	r.game.Logger().Info("level started", "level", lvl.ID, "lives", r.player.Lives())
	if err := r.game.Events().Subscribe(engine.RescaleChannel, r.rescale); err != nil {
		return fmt.Errorf("running-game: subscribe rescale: %w", err)
	}
	return r.subscribeKeys()
}

func (r *RunningGame) OnExit() error {
	if err := r.game.Events().Unsubscribe(engine.RescaleChannel, r.rescale); err != nil {
		return fmt.Errorf("running-game: unsubscribe rescale: %w", err)
	}
	return r.unsubscribeKeys()
}

// OnSleep parks the ball while another state is on top.
func (r *RunningGame) OnSleep() error {
	r.sleepVelocity = r.freeze()
	return r.unsubscribeKeys()
}

func (r *RunningGame) OnWakeUp() error {
	r.ball.Velocity = r.sleepVelocity
	r.sleepVelocity = core.Vec2{}
	return r.subscribeKeys()
}

// OnPause parks the ball while the whole game is paused.
func (r *RunningGame) OnPause() error {
	r.pauseVelocity = r.freeze()
	return r.unsubscribeKeys()
}

func (r *RunningGame) OnResume() error {
	r.ball.Velocity = r.pauseVelocity
	r.pauseVelocity = core.Vec2{}
	if r.Asleep() {
		return nil
	}
	return r.subscribeKeys()
}

func (r *RunningGame) freeze() core.Vec2 {
	v := r.ball.Velocity
	r.ball.Velocity = core.Vec2{}
	r.paddle.LeftPressed = false
	r.paddle.RightPressed = false
	return v
}

func (r *RunningGame) subscribeKeys() error {
	r.seen = r.game.Pointer().LastUpdated()
	levelBindings.install(r.game.Keyboard())
	bus := r.game.Keyboard().Events()
	if err := bus.Subscribe(input.KeyDownChannel, r.keyDown); err != nil {
		return fmt.Errorf("running-game: subscribe keys: %w", err)
	}
	if err := bus.Subscribe(input.KeyUpChannel, r.keyUp); err != nil {
		return fmt.Errorf("running-game: subscribe keys: %w", err)
	}
	return nil
}

func (r *RunningGame) unsubscribeKeys() error {
	bus := r.game.Keyboard().Events()
	if err := bus.Unsubscribe(input.KeyDownChannel, r.keyDown); err != nil {
		return fmt.Errorf("running-game: unsubscribe keys: %w", err)
	}
	if err := bus.Unsubscribe(input.KeyUpChannel, r.keyUp); err != nil {
		return fmt.Errorf("running-game: unsubscribe keys: %w", err)
	}
	return nil
}

func (r *RunningGame) onKeyDown(e input.KeyEvent) {
	switch e.Action {
	case ActionPause:
		if !e.Repeat {
			r.openPauseMenu()
		}
	case ActionLeft:
		if r.phase == phaseAiming {
			r.aim = ClampAim(r.aim-r.cfg.Aim.StepDeg, r.cfg.Aim.MaxAngleDeg)
		} else {
			r.paddle.LeftPressed = true
		}
	case ActionRight:
		if r.phase == phaseAiming {
			r.aim = ClampAim(r.aim+r.cfg.Aim.StepDeg, r.cfg.Aim.MaxAngleDeg)
		} else {
			r.paddle.RightPressed = true
		}
	case ActionFire:
		if !e.Repeat && r.phase == phaseAiming {
			r.fire = true
		}
	case ActionFaster:
		if r.phase == phaseLaunched {
			r.ball.IncreaseSpeed(r.cfg.Ball.SpeedStep)
			r.capSpeed()
		}
	case ActionSlower:
		if r.phase == phaseLaunched {
			r.slowDown()
		}
	}
}

func (r *RunningGame) onKeyUp(e input.KeyEvent) {
	switch e.Action {
	case ActionLeft:
		r.paddle.LeftPressed = false
	case ActionRight:
		r.paddle.RightPressed = false
	}
}

func (r *RunningGame) onRescale(e engine.Event) {
	if r.width > 0 && r.height > 0 {
		sx := float64(e.Width) / float64(r.width)
		sy := float64(e.Height) / float64(r.height)
		r.paddle.X *= sx
		r.ball.Position = core.V(r.ball.Position.X*sx, r.ball.Position.Y*sy)
	}
	r.width, r.height = e.Width, e.Height
	r.field.Rescale(e.Width, e.Height)
	r.paddle.Clamp()
	if r.phase == phaseAiming {
		r.placeOnPaddle()
	}
}

func (r *RunningGame) openPauseMenu() {
	emit(r.game, engine.SleepStateChannel, nil)
	emit(r.game, engine.PushStateChannel, NewPauseMenu(r.env))
}

func (r *RunningGame) capSpeed() {
	if s := r.ball.Speed(); s > r.cfg.Ball.MaxSpeed && s > 0 {
		r.ball.Velocity = r.ball.Velocity.Scale(r.cfg.Ball.MaxSpeed / s)
	}
}

// slowDown never lets the ball drop below half the launch speed or lose
// its vertical motion.
func (r *RunningGame) slowDown() {
	v := r.ball.Velocity
	r.ball.DecreaseSpeed(r.cfg.Ball.SpeedStep)
	if r.ball.Velocity.Y == 0 || r.ball.Speed() < r.cfg.Ball.Speed/2 {
		r.ball.Velocity = v
	}
}

func (r *RunningGame) launchPoint() core.Vec2 {
	return core.V(r.paddle.CenterX(), r.paddle.Y()-r.ball.Radius)
}

func (r *RunningGame) placeOnPaddle() {
	r.ball.Reset(r.launchPoint())
	r.guide.Origin = r.ball.Position
	r.guide.Angle = r.aim
}

func (r *RunningGame) enterAiming() {
	r.phase = phaseAiming
	r.aim = 0
	r.aimTicks = 0
	r.fire = false
	r.lastHit = nil
	r.paddle.Center()
	r.paddle.Enabled = false
	r.placeOnPaddle()
	r.guide.Visible = true
	r.footer.Text = "←/→ or mouse to aim · space or click to launch · p to pause"
}

func (r *RunningGame) launch() {
	speed := r.difficulty.LaunchSpeed(r.cfg.Ball.Speed, r.cfg.Ball.MaxSpeed, r.player.Score(), r.ticks)
	r.ball.Launch(AimDirection(r.aim), speed)
	r.phase = phaseLaunched
	r.paddle.Enabled = true
	r.guide.Visible = false
	r.footer.Text = ""
	r.game.Logger().Debug("ball launched", "angle", r.aim, "speed", speed, "difficulty", r.difficulty.Describe(r.player.Score(), r.ticks))
}

func (r *RunningGame) handlePointer() {
	p := r.game.Pointer()
	at := p.LastUpdated()
	moved := !at.Equal(r.seen)
	r.seen = at

	switch r.phase {
	case phaseAiming:
		if moved && p.InBounds() {
			if deg, ok := AimFromPointer(r.ball.Position, p.Position(), r.cfg.Ball.AspectY, r.cfg.Aim.MaxAngleDeg); ok {
				r.aim = deg
			}
		}
		if p.ConsumeClick() {
			r.fire = true
		}
	case phaseLaunched:
		if moved && p.InBounds() {
			r.paddle.FollowPointer(p.X())
		}
	}
}

func (r *RunningGame) UpdateState(elapsed time.Duration) error {
	r.ticks++
	r.handlePointer()

	switch r.phase {
	case phaseAiming:
		r.aimTicks++
		r.placeOnPaddle()
		if r.fire {
			r.fire = false
			if r.aimTicks >= r.cfg.Aim.CooldownTicks {
				r.launch()
			}
		}
	case phaseLaunched:
		if r.collide() {
			return nil
		}
	}

	r.UpdateObjects(elapsed)
	return nil
}

func (r *RunningGame) RenderState(dst *core.Screen) error {
	r.RenderObjects(dst)
	return nil
}

// collide resolves walls, bricks and the paddle against the ball's next
// position. It reports whether the state handed over to another one.
func (r *RunningGame) collide() bool {
	b := r.ball
	w := float64(r.game.Width())
	rad := b.Radius

	next := b.Next()
	if (next.X-rad < 0 && b.Velocity.X < 0) || (next.X+rad > w && b.Velocity.X > 0) {
		b.FlipDx()
	}
	if next.Y-rad < hudRows && b.Velocity.Y < 0 {
		b.FlipDy()
	}

	hit := r.field.FirstHit(core.Circle{Center: b.Next(), Radius: rad})
	switch {
	case hit == nil:
		r.lastHit = nil
	case hit != r.lastHit:
		r.lastHit = hit
		reflectOffBrick(b, hit.Box())
		hit.Damage()
		if hit.IsDestroyed() {
			r.player.IncreaseScore(r.cfg.Gameplay.BrickPoints)
		}
		if r.field.AllDestroyed() {
			return r.levelCleared()
		}
	}

	next = b.Next()
	pad := r.paddle.Box()
	if b.Velocity.Y > 0 && next.Y+rad >= pad.Y {
		if next.X >= pad.X && next.X <= pad.Right() {
			BounceOffPaddle(b, r.paddle, r.cfg.Gameplay.BounceMaxAngleDeg)
			return false
		}
		return r.missed()
	}
	return false
}

func (r *RunningGame) missed() bool {
	r.player.DecrementLife()
	r.game.Logger().Info("life lost", "lives", r.player.Lives(), "score", r.player.Score())
	if r.player.Lives() == 0 {
		r.game.Logger().Info("game over", "score", r.player.Score())
		emit(r.game, engine.ChangeStateChannel, NewGameOver(r.env, r.player.Score()))
		return true
	}
	r.enterAiming()
	return false
}

func (r *RunningGame) levelCleared() bool {
	r.game.Logger().Info("level cleared", "level", r.field.Level().ID, "score", r.player.Score())
	if r.levelIndex+1 >= len(r.env.Levels) {
		r.game.Logger().Info("campaign won", "score", r.player.Score())
		emit(r.game, engine.ChangeStateChannel, NewWinGame(r.env, r.player.Score()))
		return true
	}
	r.levelIndex++
	next := NewBrickField(r.env.Levels[r.levelIndex], r.cfg.Bricks, r.game)
	r.ReplaceGameObject(r.field, next)
	r.field = next
	r.player.Level = r.levelTitle()
	r.game.Logger().Info("level started", "level", next.Level().ID, "lives", r.player.Lives())
	r.enterAiming()
	return false
}

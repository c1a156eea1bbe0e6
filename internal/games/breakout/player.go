package breakout

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

const heartChar = "♥"

// Player keeps score and lives and draws them as the HUD on row 0.
type Player struct {
	score int
	lives int

	// Level is shown in the middle of the HUD.
	Level string
}

// NewPlayer creates a player with the given number of lives.
func NewPlayer(lives int) *Player {
	return &Player{lives: max(0, lives)}
}

func (p *Player) Score() int { return p.score }
func (p *Player) Lives() int { return p.lives }

// DecrementLife removes a life. Lives never go below zero.
func (p *Player) DecrementLife() {
	if p.lives > 0 {
		p.lives--
	}
}

// IncrementLife adds n lives. Non-positive n is ignored.
func (p *Player) IncrementLife(n int) {
	if n > 0 {
		p.lives += n
	}
}

// IncreaseScore adds n points. Non-positive n is ignored.
func (p *Player) IncreaseScore(n int) {
	if n > 0 {
		p.score += n
	}
}

func (p *Player) Update(time.Duration) {}

func (p *Player) Draw(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", p.score), core.ColorBrightYellow)

	lives := "Lives: " + strings.Repeat(heartChar, p.lives)
	if p.lives > 5 {
		lives = fmt.Sprintf("Lives: %s x%d", heartChar, p.lives)
	}
	dst.DrawTextColored(dst.Width()-core.TextWidth(lives)-1, 0, lives, core.ColorBrightRed)

	if p.Level != "" {
		dst.DrawTextCenteredColored(0, p.Level, core.ColorGray)
	}
}

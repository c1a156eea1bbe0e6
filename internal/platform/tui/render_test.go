package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brickbreaker/internal/core"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		name   string
		color  core.Color
		paused bool
		want   lipgloss.TerminalColor
	}{
		{"palette color", core.ColorBrightRed, false, lipgloss.Color("9")},
		{"orange", core.ColorOrange, false, lipgloss.Color("208")},
		{"default", core.ColorDefault, false, lipgloss.NoColor{}},
		{"unknown", core.Color(200), false, lipgloss.NoColor{}},
		{"paused palette color", core.ColorBrightRed, true, pausedColor},
		{"paused default", core.ColorDefault, true, pausedColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := styleFor(tt.color, tt.paused).GetForeground()
			if got != tt.want {
				t.Errorf("styleFor(%v, %v) foreground = %v, want %v", tt.color, tt.paused, got, tt.want)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "ef")

	for _, paused := range []bool{false, true} {
		out := RenderScreen(s, paused)
		if !strings.Contains(out, "cd") || !strings.Contains(out, "ef") {
			t.Errorf("paused=%v: text missing from %q", paused, out)
		}
		if lines := strings.Count(out, "\n"); lines != 1 {
			t.Errorf("paused=%v: %d newlines, want 1", paused, lines)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0), false); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}

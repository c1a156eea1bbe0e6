package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// BrickColor picks a color for a brick from its remaining health.
func BrickColor(health int) Color {
	switch {
	case health >= 4:
		return ColorMagenta
	case health == 3:
		return ColorRed
	case health == 2:
		return ColorOrange
	default:
		return ColorBrightBlue
	}
}

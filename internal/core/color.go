package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the lander renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorSilver
	ColorBlue
)

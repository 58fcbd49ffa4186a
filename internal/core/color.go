package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the renderer. The game draws in phosphor greens with an
// amber highlight.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorOrange
	ColorGray
	ColorWhite
)

package core

// Color is the foreground color of a screen cell. The platform decides how
// each one looks; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorDim // faint gridlines

	colorCount
)

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c < colorCount
}

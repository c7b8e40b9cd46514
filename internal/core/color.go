package core

// Color represents a foreground color for a screen cell.
// The first eight values line up with the classic curses color pairs so a
// piece kind can be used directly as its color.
type Color uint8

// Colors used by the board, pieces and chrome.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// String returns the color name, mostly for test failure output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}

package core

// Color is the foreground of a screen cell. The platform picks the ANSI
// code; ColorDefault keeps the terminal's own foreground.
type Color uint8

// Colors used by the typing screens.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorGray:        "gray",
	ColorBrightRed:   "bright-red",
	ColorBrightGreen: "bright-green",
	ColorBrightWhite: "bright-white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

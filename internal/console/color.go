package console

import "github.com/muesli/termenv"

// Color is a foreground color understood by every Terminal.
type Color int

const (
	ColorDefault Color = iota
	ColorGreen
	ColorRed
	ColorYellow
	ColorCyan
)

func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	}
	return "default"
}

// ansi returns the basic ANSI palette index for c, nil for ColorDefault.
func (c Color) ansi() termenv.Color {
	switch c {
	case ColorGreen:
		return termenv.ANSIGreen
	case ColorRed:
		return termenv.ANSIRed
	case ColorYellow:
		return termenv.ANSIYellow
	case ColorCyan:
		return termenv.ANSICyan
	}
	return nil
}

package common

import (
	"image/color"
	"strings"
)

// ANSI escape codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// PlayerColor pairs a terminal escape with an RGB value.
type PlayerColor struct {
	Name string
	ANSI string
	RGBA color.RGBA
}

// Palette is the set of colors players can pick, in default order.
var Palette = []PlayerColor{
	{Name: "red", ANSI: ColorRed, RGBA: color.RGBA{200, 50, 50, 255}},
	{Name: "blue", ANSI: ColorBlue, RGBA: color.RGBA{50, 100, 200, 255}},
	{Name: "green", ANSI: ColorGreen, RGBA: color.RGBA{50, 200, 50, 255}},
	{Name: "yellow", ANSI: ColorYellow, RGBA: color.RGBA{200, 200, 50, 255}},
	{Name: "purple", ANSI: ColorPurple, RGBA: color.RGBA{150, 60, 200, 255}},
	{Name: "cyan", ANSI: ColorCyan, RGBA: color.RGBA{50, 200, 200, 255}},
}

// NeutralColor is used for unoccupied territories and unknown names.
var NeutralColor = PlayerColor{Name: "gray", ANSI: ColorGray, RGBA: color.RGBA{120, 120, 120, 255}}

// LookupColor finds a palette entry by case-insensitive name.
func LookupColor(name string) (PlayerColor, bool) {
	for _, c := range Palette {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return NeutralColor, false
}

// ColorFor returns the named color, or the palette entry for seat index i
// when the name is unknown.
func ColorFor(name string, i int) PlayerColor {
	if c, ok := LookupColor(name); ok {
		return c
	}
	if i < 0 {
		return NeutralColor
	}
	return Palette[i%len(Palette)]
}

// Colorize wraps s in the color's escape sequence.
func Colorize(c PlayerColor, s string) string {
	return c.ANSI + s + ColorReset
}

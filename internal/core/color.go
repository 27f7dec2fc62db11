package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell. The zero value means
// "terminal default" so cleared cells carry no styling.
type Color uint32

const colorSet Color = 1 << 24

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Predefined colors for game elements.
var (
	ColorDefault Color
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 200, 0)
	ColorYellow  = RGB(255, 255, 0)
	ColorOrange  = RGB(255, 140, 0)
	ColorGray    = RGB(128, 128, 128)
	ColorAlert   = RGB(128, 0, 0)
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the channels of c. Default colors report black.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns c as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

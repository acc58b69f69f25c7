package core

import "fmt"

// Color is a 24-bit terminal color. The zero value is the terminal default.
type Color uint32

const colorSet = 1 << 24

// ColorDefault leaves the terminal's own foreground or background in place.
const ColorDefault Color = 0

// Palette used by overlays and HUD text.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorGold   = RGB(255, 215, 0)
	ColorOrange = RGB(255, 165, 0)
	ColorRed    = RGB(255, 99, 71)
	ColorGray   = RGB(138, 138, 138)
	ColorPanel  = RGB(30, 30, 46)
)

// RGB builds a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// RGB returns the 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as #rrggbb, or an empty string for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

package core

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit RGB intensity triple
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// NewColor creates a new Color
func NewColor(red, green, blue uint8) Color {
	return Color{Red: red, Green: green, Blue: blue}
}

// ToPixel converts the color to the buffer representation.
// Alpha is always written as 0.
func (c Color) ToPixel() color.NRGBA {
	return color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: 0}
}

// ColorFromPixel converts a buffer pixel back to a Color, dropping alpha
func ColorFromPixel(p color.NRGBA) Color {
	return Color{Red: p.R, Green: p.G, Blue: p.B}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue)
}

package quarkgl

import "image/color"

// Color is an RGB color in 8-bit channels.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// RGBF builds a color from 0..1 float channels, clamping out-of-range input.
func RGBF(r, g, b float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b)}
}

// RGBA returns the opaque image/color form.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

package frontmap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with R, G, B in [0, 255] and A in [0, 1].
// Values are treated as immutable; interpolation and hue rotation return
// new values.
type Color struct {
	R, G, B float64
	A       float64
}

// Palette used by the annotation kinds.
var (
	ColorRed      = Color{255, 0, 0, 1}
	ColorRedSoft  = Color{189, 87, 102, 0.6}
	ColorBlue     = Color{0, 0, 255, 1}
	ColorBlueSoft = Color{62, 63, 155, 0.6}
	ColorOrange   = Color{255, 165, 0, 1}
	ColorGrey     = Color{86, 86, 86, 1}
	ColorGreySoft = Color{86, 86, 86, 0.6}
	ColorWhite    = Color{255, 255, 255, 1}
)

// Lerp linearly interpolates from c to target by t. RGB components are
// rounded to whole values; alpha is not.
func (c Color) Lerp(target Color, t float64) Color {
	return Color{
		R: math.Round(c.R + (target.R-c.R)*t),
		G: math.Round(c.G + (target.G-c.G)*t),
		B: math.Round(c.B + (target.B-c.B)*t),
		A: c.A + (target.A-c.A)*t,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ShiftHue returns c with its hue rotated by the given degrees via an HSL
// round-trip. Saturation, lightness, and alpha are preserved.
func (c Color) ShiftHue(degrees float64) Color {
	h, s, l := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Hsl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	shifted := colorful.Hsl(h, s, l)
	return Color{
		R: math.Round(shifted.R * 255),
		G: math.Round(shifted.G * 255),
		B: math.Round(shifted.B * 255),
		A: c.A,
	}
}

// NRGBA converts c to a non-premultiplied color for the drawing surface.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R)),
		G: uint8(clamp255(c.G)),
		B: uint8(clamp255(c.B)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

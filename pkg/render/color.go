// ABOUTME: Rainbow color cycling
// ABOUTME: HSV to RGB conversion via go-colorful at full saturation and value
package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HueStep is how far the hue clock advances per tick
const HueStep = 0.02

// WrapHue maps any hue onto [0, 1)
func WrapHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h
}

// AdvanceHue returns the hue after one tick
func AdvanceHue(h float64) float64 {
	return WrapHue(h + HueStep)
}

// Rainbow returns the fully saturated, full value color at hue in [0, 1).
// Channels are truncated to 8 bits, not rounded.
func Rainbow(hue float64) color.RGBA {
	c := colorful.Hsv(WrapHue(hue)*360, 1, 1)
	return color.RGBA{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255), A: 255}
}

// BarHue returns the hue of bar i, shifted by its distance from the top-center bar
func BarHue(hue float64, i, halfBars int) float64 {
	if halfBars <= 0 {
		return WrapHue(hue)
	}
	return WrapHue(hue + math.Abs(float64(i-halfBars))/float64(halfBars))
}

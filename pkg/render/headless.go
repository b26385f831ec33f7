// ABOUTME: Canvas that counts draw calls without rasterizing
// ABOUTME: Used when running without a window
package render

import "image/color"

// Headless is a Canvas that only tracks its size and counts operations
type Headless struct {
	width, height int
	Draws         uint64
	Fades         uint64
}

// NewHeadless is a SurfaceFactory producing headless canvases
func NewHeadless(width, height int) Canvas {
	return &Headless{width: width, height: height}
}

func (h *Headless) Size() (int, int) { return h.width, h.height }

func (h *Headless) Clear() {}

func (h *Headless) Fade(uint8) { h.Fades++ }

func (h *Headless) StrokeCircle(_, _, _, _ float32, _ color.RGBA) { h.Draws++ }

func (h *Headless) StrokeLine(_, _, _, _, _ float32, _ color.RGBA) { h.Draws++ }

func (h *Headless) FillCircle(_, _, _ float32, _ color.RGBA) { h.Draws++ }

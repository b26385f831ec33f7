// ABOUTME: Ebiten-backed drawing surface
// ABOUTME: Implements render.Canvas with ebiten images and vector primitives
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/harperreed/halo/pkg/render"
)

// Canvas is a render.Canvas drawing onto an offscreen ebiten image
type Canvas struct {
	image *ebiten.Image
}

// NewCanvas is a render.SurfaceFactory producing ebiten canvases
func NewCanvas(width, height int) render.Canvas {
	return &Canvas{image: ebiten.NewImage(width, height)}
}

// Image returns the underlying image for compositing
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

func (c *Canvas) Size() (int, int) {
	b := c.image.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear() {
	c.image.Clear()
}

// Fade blends a translucent black rectangle over the whole image
func (c *Canvas) Fade(alpha uint8) {
	w, h := c.Size()
	vector.DrawFilledRect(c.image, 0, 0, float32(w), float32(h), color.RGBA{A: alpha}, false)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float32, col color.RGBA) {
	vector.StrokeCircle(c.image, cx, cy, r, width, col, true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float32, col color.RGBA) {
	vector.StrokeLine(c.image, x0, y0, x1, y1, width, col, true)
}

func (c *Canvas) FillCircle(cx, cy, r float32, col color.RGBA) {
	vector.DrawFilledCircle(c.image, cx, cy, r, col, true)
}

// Dispose releases the image's GPU memory
func (c *Canvas) Dispose() {
	c.image.Deallocate()
}

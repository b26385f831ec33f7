// ABOUTME: Canvas contract and validated draw wrappers
// ABOUTME: Pre-validates geometry and reports ErrDraw instead of drawing invalid shapes
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrDraw is returned when an element cannot be drawn. Callers skip the element.
var ErrDraw = errors.New("render: invalid geometry")

// maxCoord bounds coordinates passed to a canvas
const maxCoord = 1 << 15

// Canvas is a 2D drawing surface
type Canvas interface {
	// Size returns the surface dimensions in pixels
	Size() (width, height int)

	// Clear fills the surface with transparent black
	Clear()

	// Fade blends the surface toward black with the given alpha
	Fade(alpha uint8)

	// StrokeCircle draws a circle outline
	StrokeCircle(cx, cy, r, width float32, c color.RGBA)

	// StrokeLine draws a line segment
	StrokeLine(x0, y0, x1, y1, width float32, c color.RGBA)

	// FillCircle draws a filled circle
	FillCircle(cx, cy, r float32, c color.RGBA)
}

// SurfaceFactory creates a cleared canvas of the given size
type SurfaceFactory func(width, height int) Canvas

func validCoord(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) < maxCoord
}

// offCanvas reports whether the box [x0,x1]x[y0,y1] misses the canvas entirely
func offCanvas(c Canvas, x0, y0, x1, y1 float64) bool {
	w, h := c.Size()
	return x1 < 0 || y1 < 0 || x0 > float64(w) || y0 > float64(h)
}

// DrawCircle draws a circle outline after validating its geometry
func DrawCircle(c Canvas, cx, cy, r, width float64, col color.RGBA) error {
	if !validCoord(cx) || !validCoord(cy) || !validCoord(r) {
		return fmt.Errorf("%w: circle at (%v, %v) r=%v", ErrDraw, cx, cy, r)
	}
	if r <= 0 || width <= 0 {
		return fmt.Errorf("%w: circle radius %v width %v", ErrDraw, r, width)
	}
	if offCanvas(c, cx-r, cy-r, cx+r, cy+r) {
		return nil
	}
	c.StrokeCircle(float32(cx), float32(cy), float32(r), float32(width), col)
	return nil
}

// DrawLine draws a line segment after validating its geometry
func DrawLine(c Canvas, x0, y0, x1, y1, width float64, col color.RGBA) error {
	if !validCoord(x0) || !validCoord(y0) || !validCoord(x1) || !validCoord(y1) {
		return fmt.Errorf("%w: line (%v, %v)-(%v, %v)", ErrDraw, x0, y0, x1, y1)
	}
	if width <= 0 {
		return fmt.Errorf("%w: line width %v", ErrDraw, width)
	}
	if offCanvas(c, math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)) {
		return nil
	}
	c.StrokeLine(float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col)
	return nil
}

// DrawDisc draws a filled circle after validating its geometry.
// Discs entirely outside the canvas are a no-op.
func DrawDisc(c Canvas, cx, cy, r float64, col color.RGBA) error {
	if !validCoord(cx) || !validCoord(cy) || !validCoord(r) {
		return fmt.Errorf("%w: disc at (%v, %v) r=%v", ErrDraw, cx, cy, r)
	}
	if r <= 0 {
		return fmt.Errorf("%w: disc radius %v", ErrDraw, r)
	}
	if offCanvas(c, cx-r, cy-r, cx+r, cy+r) {
		return nil
	}
	c.FillCircle(float32(cx), float32(cy), float32(r), col)
	return nil
}

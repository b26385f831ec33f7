// ABOUTME: Persistent trail buffer
// ABOUTME: A surface faded with translucent black each tick and recreated on resize
package render

// TrailAlpha is the opacity of the black fill applied each tick
const TrailAlpha = 60

// Trail is the persistent surface frames accumulate on
type Trail struct {
	factory SurfaceFactory
	surface Canvas
	alpha   uint8
}

// NewTrail creates a cleared trail of the given size
func NewTrail(factory SurfaceFactory, width, height int, alpha uint8) *Trail {
	t := &Trail{factory: factory, alpha: alpha}
	t.Resize(width, height)
	return t
}

// disposer is implemented by surfaces that hold GPU or other native resources
type disposer interface {
	Dispose()
}

// Resize replaces the surface with a cleared one of the new size. The old
// surface is disposed if it supports it.
func (t *Trail) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if d, ok := t.surface.(disposer); ok {
		d.Dispose()
	}
	t.surface = t.factory(width, height)
	t.surface.Clear()
}

// Fade darkens the existing contents so older frames fade out
func (t *Trail) Fade() {
	t.surface.Fade(t.alpha)
}

// Surface returns the canvas to draw the current frame on
func (t *Trail) Surface() Canvas {
	return t.surface
}

// Size returns the trail dimensions
func (t *Trail) Size() (int, int) {
	return t.surface.Size()
}

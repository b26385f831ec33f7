// ABOUTME: Recording canvas for tests
// ABOUTME: Captures draw calls, clears and fades without a graphics backend
package rendertest

import (
	"image/color"

	"github.com/harperreed/halo/pkg/render"
)

// Kind identifies a recorded draw call
type Kind int

const (
	KindCircle Kind = iota
	KindLine
	KindDisc
)

// Op is one recorded draw call
type Op struct {
	Kind           Kind
	X0, Y0, X1, Y1 float32
	R, Width       float32
	Color          color.RGBA
}

// Recorder is an in-memory Canvas that records what was drawn
type Recorder struct {
	Width, Height int
	Ops           []Op
	Clears        int
	Fades         []uint8
	Disposed      bool
}

// NewRecorder creates a recorder of the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Factory is a render.SurfaceFactory producing recorders
func Factory(width, height int) render.Canvas {
	return NewRecorder(width, height)
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// Clear drops everything drawn so far
func (r *Recorder) Clear() {
	r.Ops = nil
	r.Fades = nil
	r.Clears++
}

// Dispose marks the recorder as released
func (r *Recorder) Dispose() {
	r.Disposed = true
}

func (r *Recorder) Fade(alpha uint8) {
	r.Fades = append(r.Fades, alpha)
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: KindCircle, X0: cx, Y0: cy, R: radius, Width: width, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: KindLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: KindDisc, X0: cx, Y0: cy, R: radius, Color: c})
}

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

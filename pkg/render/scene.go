// ABOUTME: Scene composition for the circular bar visualizer
// ABOUTME: Draws the pulsing circle, radial bars and overlays onto a canvas
package render

import (
	"math"

	"github.com/harperreed/halo/pkg/bars"
)

const (
	// MaxBarLength caps how far a bar extends past the circle
	MaxBarLength = 300.0

	circleWidth = 4.0
	barWidth    = 4.0
)

// Overlay is anything drawn on top of the bars, such as a particle system
type Overlay interface {
	Render(c Canvas)
}

// Frame is everything needed to draw one tick
type Frame struct {
	Heights *bars.Heights
	Radius  float64
	Hue     float64
	Overlay Overlay
}

// Stats describes what a Draw call put on the canvas
type Stats struct {
	Bars    int
	Skipped int
}

// Renderer draws frames with precomputed bar directions
type Renderer struct {
	cos [bars.BarCount]float64
	sin [bars.BarCount]float64
}

// NewRenderer creates a renderer with bars spread evenly around the circle,
// starting at the top (-90 degrees) and going clockwise
func NewRenderer() *Renderer {
	r := &Renderer{}
	for i, a := range Angles() {
		r.cos[i] = math.Cos(a)
		r.sin[i] = math.Sin(a)
	}
	return r
}

// Angles returns the direction of each bar in radians
func Angles() [bars.BarCount]float64 {
	var angles [bars.BarCount]float64
	for i := range angles {
		angles[i] = -math.Pi/2 + 2*math.Pi*float64(i)/float64(bars.BarCount)
	}
	return angles
}

// Draw renders f centered on c. Elements that fail validation are skipped.
func (r *Renderer) Draw(c Canvas, f Frame) Stats {
	var stats Stats

	w, h := c.Size()
	cx, cy := float64(w/2), float64(h/2)

	if err := DrawCircle(c, cx, cy, math.Trunc(f.Radius), circleWidth, Rainbow(f.Hue)); err != nil {
		stats.Skipped++
	}

	if f.Heights != nil {
		for i, height := range f.Heights {
			if !f.Heights.Visible(i) {
				continue
			}
			height = math.Min(height, MaxBarLength)

			sx := cx + r.cos[i]*f.Radius
			sy := cy + r.sin[i]*f.Radius
			ex := cx + r.cos[i]*(f.Radius+height)
			ey := cy + r.sin[i]*(f.Radius+height)

			col := Rainbow(BarHue(f.Hue, i, bars.HalfBars))
			if err := DrawLine(c, sx, sy, ex, ey, barWidth, col); err != nil {
				stats.Skipped++
				continue
			}
			stats.Bars++
		}
	}

	if f.Overlay != nil {
		f.Overlay.Render(c)
	}

	return stats
}

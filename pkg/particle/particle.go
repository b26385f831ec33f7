// ABOUTME: Short-lived decaying particle emitters
// ABOUTME: Spawn, update and render particles with an injectable random source
package particle

import (
	"image/color"
	"math"

	"github.com/harperreed/halo/pkg/render"
)

const (
	// MaxLife is the life of a freshly spawned particle
	MaxLife = 255.0

	minSpeed, maxSpeed = 4.0, 10.0
	minDecay, maxDecay = 8.0, 15.0
	minRadius          = 3
	maxRadius          = 6
)

// Rand is the randomness a particle needs. *math/rand/v2.Rand satisfies it,
// so tests can seed a deterministic generator.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Particle is a point that flies outward and fades
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
	Life   float64
	Decay  float64
	Radius int
}

// uniform returns a value in [lo, hi]
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Spawn creates a particle at (x, y) heading in a random direction
func Spawn(rng Rand, x, y float64, c color.RGBA, speedMult float64) Particle {
	angle := uniform(rng, 0, 2*math.Pi)
	speed := uniform(rng, minSpeed, maxSpeed) * speedMult

	return Particle{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Color:  c,
		Life:   MaxLife,
		Decay:  uniform(rng, minDecay, maxDecay),
		Radius: minRadius + rng.IntN(maxRadius-minRadius+1),
	}
}

// Update advances the particle one tick and reports whether it is still alive
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Decay
	return p.Alive()
}

// Alive reports whether the particle has life left
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Faded returns the particle color scaled by its remaining life
func (p *Particle) Faded() color.RGBA {
	f := math.Max(0, p.Life/MaxLife)
	return color.RGBA{
		R: uint8(float64(p.Color.R) * f),
		G: uint8(float64(p.Color.G) * f),
		B: uint8(float64(p.Color.B) * f),
		A: 255,
	}
}

// Render draws the particle. Dead or off-canvas particles are skipped.
func (p *Particle) Render(c render.Canvas) error {
	if !p.Alive() {
		return nil
	}
	return render.DrawDisc(c, float64(int(p.X)), float64(int(p.Y)), float64(p.Radius), p.Faded())
}

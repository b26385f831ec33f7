// ABOUTME: Active particle set management
// ABOUTME: Emits, steps and renders particles, dropping dead ones
package particle

import (
	"image/color"

	"github.com/harperreed/halo/pkg/render"
)

// System owns the set of live particles
type System struct {
	rng       Rand
	particles []Particle
	limit     int
}

// NewSystem creates a particle system. limit caps the live set; zero means unlimited.
func NewSystem(rng Rand, limit int) *System {
	return &System{rng: rng, limit: limit}
}

// Emit spawns n particles at (x, y). Spawns past the limit are dropped.
func (s *System) Emit(n int, x, y float64, c color.RGBA, speedMult float64) {
	for i := 0; i < n; i++ {
		if s.limit > 0 && len(s.particles) >= s.limit {
			return
		}
		s.particles = append(s.particles, Spawn(s.rng, x, y, c, speedMult))
	}
}

// Step updates every particle and removes the dead ones
func (s *System) Step() {
	alive := s.particles[:0]
	for i := range s.particles {
		if s.particles[i].Update() {
			alive = append(alive, s.particles[i])
		}
	}
	s.particles = alive
}

// Render draws every live particle, ignoring particles that could not be drawn
func (s *System) Render(c render.Canvas) {
	for i := range s.particles {
		_ = s.particles[i].Render(c)
	}
}

// Len returns the number of live particles
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice is only valid until the next Step.
func (s *System) Particles() []Particle {
	return s.particles
}

// ABOUTME: Frame loop configuration
// ABOUTME: Window size, frame rate, frame size and particle options
package app

import "github.com/harperreed/halo/pkg/audio"

// Config holds visualizer configuration
type Config struct {
	Width     int
	Height    int
	FPS       int
	FrameSize int

	// Particles enables the pulse spawn trigger
	Particles bool
	// PulseThreshold is the radius pulse above which particles spawn
	PulseThreshold float64
	// ParticleLimit caps live particles; zero means unlimited
	ParticleLimit int
	// Seed seeds particle randomness; zero picks a random seed
	Seed uint64
}

// DefaultConfig returns the standard 1080x500 @ 60Hz configuration
func DefaultConfig() Config {
	return Config{
		Width:          1080,
		Height:         500,
		FPS:            60,
		FrameSize:      audio.BufferSize,
		PulseThreshold: 50,
		ParticleLimit:  400,
	}
}

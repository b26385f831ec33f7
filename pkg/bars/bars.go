// ABOUTME: Mirrored bar height aggregation
// ABOUTME: Chunk maxima with a treble gain ramp, mirrored left/right
package bars

import (
	"math"

	"github.com/harperreed/halo/pkg/spectrum"
)

const (
	// BarCount is the number of bars around the full circle
	BarCount = 140
	// HalfBars is the number of independent buckets; the other half mirrors them
	HalfBars = BarCount / 2

	// VisibleThreshold is the minimum height drawn; lower bars stay in the data
	VisibleThreshold = 5.0

	// BaseRadius is the circle radius with no bass
	BaseRadius = 90.0
	// MaxPulse caps how far bass can push the radius out
	MaxPulse = 150.0

	heightScale = 3.0
	gainBase    = 0.5
	gainRamp    = 3.0
)

// Heights holds one height per bar; Heights[i] == Heights[BarCount-1-i]
type Heights [BarCount]float64

// Visible reports whether bar i is tall enough to draw
func (h *Heights) Visible(i int) bool {
	return h[i] >= VisibleThreshold
}

// Gain returns the treble compensation for bucket i: 0.5x for bass up to 3.5x
func Gain(i int) float64 {
	return gainBase + float64(i)/float64(HalfBars)*gainRamp
}

// Aggregate buckets s into HalfBars chunks, takes each chunk's maximum,
// applies the gain ramp and mirrors the result.
func Aggregate(s spectrum.Spectrum) Heights {
	var h Heights

	chunk := len(s) / HalfBars
	if chunk < 1 {
		chunk = 1
	}

	for i := 0; i < HalfBars; i++ {
		start := i * chunk
		end := start + chunk
		if end > len(s) {
			end = len(s)
		}

		val := 0.0
		for j := start; j < end; j++ {
			if s[j] > val {
				val = s[j]
			}
		}

		v := val * heightScale * Gain(i)
		h[i] = v
		h[BarCount-1-i] = v
	}

	return h
}

// BassEnergy returns the mean of bins [1, 5) of a normalized spectrum.
// Missing bins are left out of the mean; NaN results are reported as 0.
func BassEnergy(s spectrum.Spectrum) float64 {
	end := 5
	if end > len(s) {
		end = len(s)
	}
	if end <= 1 {
		return 0
	}

	sum := 0.0
	for _, v := range s[1:end] {
		sum += v
	}
	mean := sum / float64(end-1)
	if math.IsNaN(mean) {
		return 0
	}
	return mean
}

// Pulse returns how far bass pushes the circle out, capped at MaxPulse
func Pulse(bass float64) float64 {
	if bass < 0 || math.IsNaN(bass) {
		return 0
	}
	return math.Min(bass*2, MaxPulse)
}

// Radius returns the circle radius for the given bass energy
func Radius(bass float64) float64 {
	return BaseRadius + Pulse(bass)
}

// ABOUTME: Rolling peak automatic gain control
// ABOUTME: Asymmetric exponential peak tracking with a floor against silence blowups
package spectrum

const (
	// InitialPeak is the rolling peak before any audio has been seen
	InitialPeak = 0.01

	// PeakFloor bounds the scale factor during silence
	PeakFloor = 0.2

	// TargetLevel is the magnitude a spectrum at the rolling peak is scaled to
	TargetLevel = 40.0

	// AttackRate is the smoothing weight when the current maximum exceeds the peak
	AttackRate = 0.1

	// DecayRate is the smoothing weight otherwise
	DecayRate = 0.005
)

// RollingPeak tracks an exponentially smoothed spectrum maximum
type RollingPeak struct {
	value float64
}

// NewRollingPeak creates a peak tracker at InitialPeak
func NewRollingPeak() *RollingPeak {
	return &RollingPeak{value: InitialPeak}
}

// Value returns the current rolling peak
func (p *RollingPeak) Value() float64 {
	return p.value
}

// Update folds the maximum of s into the rolling peak and returns s
// scaled by TargetLevel/peak along with the scale factor used.
// The peak never falls below PeakFloor after an update.
func (p *RollingPeak) Update(s Spectrum) (Spectrum, float64) {
	curr := s.Max()

	alpha := DecayRate
	if curr > p.value {
		alpha = AttackRate
	}
	p.value = p.value*(1-alpha) + curr*alpha

	if p.value < PeakFloor {
		p.value = PeakFloor
	}

	scale := TargetLevel / p.value
	return s.Scale(scale), scale
}

// ABOUTME: Streaming linear resampler for mono frames
// ABOUTME: Converts decoded file audio to the analysis sample rate
package resample

import "github.com/harperreed/halo/pkg/audio"

// Resampler performs linear interpolation to convert between sample rates.
// State carries across calls so consecutive chunks join without clicks.
type Resampler struct {
	inputRate  int
	outputRate int
	ratio      float64

	// position is measured from the last sample of the previous chunk
	position float64
	last     float64
	primed   bool
}

// New creates a new resampler
func New(inputRate, outputRate int) *Resampler {
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// Resample converts input at the input rate and appends the result to dst
func (r *Resampler) Resample(dst, input audio.Frame) audio.Frame {
	if len(input) == 0 {
		return dst
	}
	if !r.primed {
		r.last = input[0]
		r.position = 1
		r.primed = true
	}

	// sample i of the virtual stream is r.last for i == 0, input[i-1] otherwise
	at := func(i int) float64 {
		if i == 0 {
			return r.last
		}
		return input[i-1]
	}

	for {
		idx := int(r.position)
		frac := r.position - float64(idx)
		if idx > len(input) || (idx == len(input) && frac > 0) {
			break
		}

		if frac == 0 {
			dst = append(dst, at(idx))
		} else {
			dst = append(dst, at(idx)*(1-frac)+at(idx+1)*frac)
		}
		r.position += r.ratio
	}

	r.position -= float64(len(input))
	r.last = input[len(input)-1]

	return dst
}

// Reset resets the resampler state
func (r *Resampler) Reset() {
	r.position = 0
	r.last = 0
	r.primed = false
}

// Ratio returns input samples consumed per output sample
func (r *Resampler) Ratio() float64 {
	return r.ratio
}

// OutputSamplesNeeded calculates how many output samples will be produced from input samples
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	return int(float64(inputSamples) / r.ratio)
}

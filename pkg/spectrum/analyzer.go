// ABOUTME: Windowed FFT spectrum analyzer
// ABOUTME: Hann window plus gonum real FFT, truncated to the display range
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/harperreed/halo/pkg/audio"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// MaxFreqIndex is the number of FFT bins kept for display (~3.4kHz at 44.1kHz/1024)
const MaxFreqIndex = 80

// Spectrum is a sequence of non-negative magnitudes indexed by FFT bin
type Spectrum []float64

// Max returns the largest magnitude, or 0 for an empty spectrum
func (s Spectrum) Max() float64 {
	peak := 0.0
	for _, v := range s {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Scale returns a copy of the spectrum multiplied by factor
func (s Spectrum) Scale(factor float64) Spectrum {
	out := make(Spectrum, len(s))
	for i, v := range s {
		out[i] = v * factor
	}
	return out
}

// Sanitize replaces NaN, infinite and negative values with 0 in place
func (s Spectrum) Sanitize() Spectrum {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			s[i] = 0
		}
	}
	return s
}

// Analyzer computes windowed magnitude spectra for frames of a fixed size
type Analyzer struct {
	size     int
	bins     int
	fft      *fourier.FFT
	window   []float64
	windowed []float64
	coeffs   []complex128
}

// NewAnalyzer creates an analyzer for frames of size samples keeping bins bins.
// bins is clamped to the size/2+1 bins a real FFT produces.
func NewAnalyzer(size, bins int) *Analyzer {
	if size < 2 {
		size = 2
	}
	if limit := size/2 + 1; bins > limit {
		bins = limit
	}
	if bins < 0 {
		bins = 0
	}

	ones := make([]float64, size)
	for i := range ones {
		ones[i] = 1
	}

	return &Analyzer{
		size:     size,
		bins:     bins,
		fft:      fourier.NewFFT(size),
		window:   window.Hann(ones),
		windowed: make([]float64, size),
	}
}

// NewDefaultAnalyzer creates an analyzer for BufferSize frames and MaxFreqIndex bins
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(audio.BufferSize, MaxFreqIndex)
}

// Size returns the expected frame length
func (a *Analyzer) Size() int { return a.size }

// Bins returns the spectrum length produced by Analyze
func (a *Analyzer) Bins() int { return a.bins }

// Analyze returns the magnitude spectrum of frame. A frame of the wrong
// length (a short read) yields an all-zero spectrum rather than an error.
func (a *Analyzer) Analyze(frame audio.Frame) Spectrum {
	out := make(Spectrum, a.bins)
	if len(frame) != a.size {
		return out
	}

	for i, v := range frame {
		a.windowed[i] = v * a.window[i]
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.windowed)
	for i := range out {
		out[i] = cmplx.Abs(a.coeffs[i])
	}

	return out.Sanitize()
}

// ABOUTME: Tests for the spectrum analyzer
// ABOUTME: Verifies sinusoid bin placement, silence, short reads and sanitizing
package spectrum

import (
	"math"
	"testing"

	"github.com/harperreed/halo/pkg/audio"
)

func sineFrame(bin float64, size int) audio.Frame {
	frame := make(audio.Frame, size)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * bin * float64(i) / float64(size))
	}
	return frame
}

func argmax(s Spectrum) int {
	best := 0
	for i, v := range s {
		if v > s[best] {
			best = i
		}
	}
	return best
}

func TestAnalyzeSinusoidPeak(t *testing.T) {
	a := NewDefaultAnalyzer()

	tests := []struct {
		name string
		bin  float64
	}{
		{"low bin", 3},
		{"mid bin", 20},
		{"high bin", 75},
		{"between bins", 40.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := a.Analyze(sineFrame(tt.bin, audio.BufferSize))
			if len(s) != MaxFreqIndex {
				t.Fatalf("expected %d bins, got %d", MaxFreqIndex, len(s))
			}
			got := argmax(s)
			if math.Abs(float64(got)-tt.bin) > 1 {
				t.Errorf("expected peak at or next to bin %.1f, got %d", tt.bin, got)
			}
		})
	}
}

func TestAnalyzeSilence(t *testing.T) {
	a := NewDefaultAnalyzer()
	s := a.Analyze(audio.Silence(audio.BufferSize))

	for i, v := range s {
		if v != 0 {
			t.Fatalf("bin %d: expected 0, got %f", i, v)
		}
	}
}

func TestAnalyzeShortRead(t *testing.T) {
	a := NewDefaultAnalyzer()

	for _, size := range []int{0, 512, audio.BufferSize + 1} {
		s := a.Analyze(sineFrame(10, size))
		if len(s) != MaxFreqIndex {
			t.Fatalf("size %d: expected %d bins, got %d", size, MaxFreqIndex, len(s))
		}
		if s.Max() != 0 {
			t.Errorf("size %d: expected all-zero spectrum, got max %f", size, s.Max())
		}
	}
}

func TestAnalyzeNonNegative(t *testing.T) {
	a := NewDefaultAnalyzer()
	frame := sineFrame(7, audio.BufferSize)
	for i := range frame {
		frame[i] += 0.3 * math.Cos(float64(i)*0.37)
	}

	for i, v := range a.Analyze(frame) {
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("bin %d: invalid magnitude %f", i, v)
		}
	}
}

func TestAnalyzeNaNInput(t *testing.T) {
	a := NewDefaultAnalyzer()
	frame := sineFrame(7, audio.BufferSize)
	frame[100] = math.NaN()

	for i, v := range a.Analyze(frame) {
		if math.IsNaN(v) {
			t.Fatalf("bin %d: NaN survived sanitizing", i)
		}
	}
}

func TestNewAnalyzerClampsBins(t *testing.T) {
	a := NewAnalyzer(16, 100)
	if a.Bins() != 9 {
		t.Errorf("expected 9 bins for 16-sample FFT, got %d", a.Bins())
	}
	if a.Size() != 16 {
		t.Errorf("expected size 16, got %d", a.Size())
	}
}

func TestSpectrumSanitize(t *testing.T) {
	s := Spectrum{1, math.NaN(), math.Inf(1), -2, 3}
	s.Sanitize()

	expected := Spectrum{1, 0, 0, 0, 3}
	for i := range expected {
		if s[i] != expected[i] {
			t.Errorf("index %d: expected %f, got %f", i, expected[i], s[i])
		}
	}
}

// ABOUTME: Test tone generator source
// ABOUTME: Generates a paced sine wave for running without an audio device
package capture

import (
	"context"
	"fmt"
	"math"

	"github.com/harperreed/halo/pkg/audio"
)

// ToneSource generates a sine test tone at real-time pace
type ToneSource struct {
	frequency   float64
	amplitude   float64
	sampleRate  int
	sampleIndex uint64
	pacer       *pacer
}

// NewToneSource creates a tone generator. A zero frequency defaults to 440Hz (A4).
func NewToneSource(frequency float64, cfg Config) *ToneSource {
	if frequency <= 0 {
		frequency = 440.0
	}
	return &ToneSource{
		frequency:  frequency,
		amplitude:  0.5, // 50% volume
		sampleRate: cfg.SampleRate,
		pacer:      newPacer(frameInterval(cfg.FrameSize, cfg.SampleRate)),
	}
}

// Record waits for the next frame boundary and returns one frame of the tone
func (s *ToneSource) Record(ctx context.Context, frameSize int) (audio.Frame, error) {
	if err := s.pacer.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	frame := make(audio.Frame, frameSize)
	for i := range frame {
		t := float64(s.sampleIndex+uint64(i)) / float64(s.sampleRate)
		frame[i] = s.amplitude * math.Sin(2*math.Pi*s.frequency*t)
	}
	s.sampleIndex += uint64(frameSize)

	return frame, nil
}

func (s *ToneSource) SampleRate() int { return s.sampleRate }
func (s *ToneSource) Channels() int   { return 1 }
func (s *ToneSource) Name() string    { return fmt.Sprintf("Test Tone (%.0fHz)", s.frequency) }
func (s *ToneSource) Close() error    { return nil }

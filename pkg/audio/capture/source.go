// ABOUTME: Source interface and shared capture configuration
// ABOUTME: Common contract for loopback, tone and file audio sources
package capture

import (
	"context"
	"time"

	"github.com/harperreed/halo/pkg/audio"
)

// Source yields mono frames of captured audio
type Source interface {
	// Record blocks until frameSize samples per channel are available.
	// Errors wrap ErrCapture and are recoverable.
	Record(ctx context.Context, frameSize int) (audio.Frame, error)

	// SampleRate returns the capture sample rate
	SampleRate() int

	// Channels returns the number of captured channels before mono reduction
	Channels() int

	// Name returns a human-readable name of the underlying device or input
	Name() string

	// Close releases the device handle
	Close() error
}

// Config describes how a source should be opened
type Config struct {
	SampleRate int
	Channels   int
	FrameSize  int

	// Device, when set, selects the first capture device whose name contains it
	Device string

	// Timeout bounds a single Record call. Zero means four frame durations.
	Timeout time.Duration
}

// DefaultConfig returns the standard 44.1kHz stereo capture configuration
func DefaultConfig() Config {
	return Config{
		SampleRate: audio.SampleRate,
		Channels:   audio.Channels,
		FrameSize:  audio.BufferSize,
	}
}

// frameTimeout returns the Record timeout for this configuration
func (c Config) frameTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 4 * frameInterval(c.FrameSize, c.SampleRate)
}

// frameInterval returns the wall-clock duration of one frame
func frameInterval(frameSize, sampleRate int) time.Duration {
	return time.Duration(audio.FrameDuration(frameSize, sampleRate) * float64(time.Second))
}

// pacer sleeps until the next frame boundary so synthetic sources
// deliver frames at the rate a real device would
type pacer struct {
	interval time.Duration
	next     time.Time
	now      func() time.Time
}

func newPacer(interval time.Duration) *pacer {
	return &pacer{interval: interval, now: time.Now}
}

// wait blocks until the next boundary or ctx is done
func (p *pacer) wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}

	now := p.now()
	if p.next.IsZero() || now.Sub(p.next) > p.interval {
		// First frame, or we fell behind: resynchronize instead of bursting
		p.next = now
	}
	p.next = p.next.Add(p.interval)

	delay := p.next.Sub(now)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

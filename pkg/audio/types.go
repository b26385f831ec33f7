// ABOUTME: Audio type definitions for the visualizer pipeline
// ABOUTME: Defines capture constants, the mono Frame and sample conversions
package audio

import "math"

const (
	// Capture format used by every source
	SampleRate = 44100
	Channels   = 2
	BufferSize = 1024

	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Frame is one tick of mono audio, BufferSize samples long when complete.
// Samples are normalized to [-1, 1].
type Frame []float64

// Silence returns a zero-filled frame of the given length
func Silence(size int) Frame {
	return make(Frame, size)
}

// FrameDuration returns how long a frame of size samples lasts at sampleRate, in seconds
func FrameDuration(size, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(size) / float64(sampleRate)
}

// Mono averages interleaved multi-channel samples into a single channel.
// A trailing partial sample group is dropped.
func Mono(interleaved []float32, channels int) Frame {
	if channels <= 0 {
		return Frame{}
	}

	frames := len(interleaved) / channels
	out := make(Frame, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(interleaved[i*channels+ch])
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// SampleFromInt16 converts a 16-bit PCM sample to a float in [-1, 1)
func SampleFromInt16(sample int16) float32 {
	return float32(sample) / 32768.0
}

// SampleFromInt converts a signed PCM sample of the given bit depth to a float in [-1, 1)
func SampleFromInt(sample int32, bitDepth int) float32 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 0
	}
	return float32(float64(sample) / math.Exp2(float64(bitDepth-1)))
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	// Reconstruct 24-bit value and sign-extend to 32-bit
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}

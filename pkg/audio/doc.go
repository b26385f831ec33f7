// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the mono Frame type, capture constants and sample conversions
// Package audio provides the fundamental audio types used by the visualizer.
//
// Every source captures interleaved float32 samples at SampleRate, which are
// reduced to a mono Frame of BufferSize samples once per tick:
//
//	frame := audio.Mono(interleaved, audio.Channels)
//
// It also provides conversions from integer PCM (16-bit, 24-bit and arbitrary
// bit depths) into the normalized float range used by the analyzer.
package audio

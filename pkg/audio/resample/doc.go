// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts mono audio frames between sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling, carrying state between
// chunks so a stream can be converted piecewise.
//
// Example:
//
//	r := resample.New(48000, 44100)
//	out := r.Resample(nil, frame)
package resample

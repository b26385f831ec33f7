// ABOUTME: Streaming audio file decoders
// ABOUTME: Provides Decoder interface and implementations for MP3, FLAC and WAV
// Package decode provides streaming decoders for audio files.
//
// Supports: MP3, FLAC, WAV (16-bit and 24-bit PCM)
//
// All decoders implement the Decoder interface and output interleaved
// float32 samples in [-1, 1).
//
// Example:
//
//	open, err := decode.ForPath("song.flac")
//	dec, err := open(file)
//	n, err := dec.Read(samples)
package decode

// ABOUTME: Audio capture package for loopback recording
// ABOUTME: Provides the Source interface and malgo, tone and file implementations
// Package capture provides blocking, frame-at-a-time audio sources.
//
// The primary source records the system's audio output through miniaudio
// (via malgo), either from a loopback-capable capture device or from a
// native loopback stream on backends that support one. Tone and file
// sources produce the same frames for headless runs and demos.
//
// Example:
//
//	src, err := capture.OpenLoopback(capture.DefaultConfig())
//	if err != nil {
//	    log.Fatalf("audio init failed: %v", err)
//	}
//	defer src.Close()
//
//	frame, err := src.Record(ctx, audio.BufferSize)
//	if err != nil {
//	    frame = audio.Silence(audio.BufferSize)
//	}
package capture

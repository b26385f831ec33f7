// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for all file decoders and extension lookup
package decode

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for file types no decoder handles
var ErrUnsupported = errors.New("decode: unsupported format")

// Decoder yields interleaved float32 samples from an encoded stream
type Decoder interface {
	// Read fills dst and returns the number of samples written. It returns
	// io.EOF, possibly alongside samples, at end of stream.
	Read(dst []float32) (int, error)

	// SampleRate returns the stream's sample rate in Hz
	SampleRate() int

	// Channels returns the number of interleaved channels
	Channels() int
}

// Opener creates a decoder reading from r
type Opener func(r io.Reader) (Decoder, error)

// ForPath returns the opener for path's extension
func ForPath(path string) (Opener, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return NewMP3, nil
	case ".flac":
		return NewFLAC, nil
	case ".wav", ".wave":
		return NewWAV, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: .mp3, .flac, .wav)", ErrUnsupported, ext)
	}
}

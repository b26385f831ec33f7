// ABOUTME: File-backed audio source for MP3 and FLAC inputs
// ABOUTME: Decodes, loops and paces file audio as if it were captured live
package capture

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/harperreed/halo/pkg/audio"
	"github.com/harperreed/halo/pkg/audio/decode"
	"github.com/harperreed/halo/pkg/audio/resample"
)

// FileSource reads from an audio file, looping at EOF
type FileSource struct {
	path    string
	file    *os.File
	decoder decode.Decoder
	open    decode.Opener
	pacer   *pacer

	// resampler converts to the configured rate when the file differs
	resampler  *resample.Resampler
	outputRate int
	pending    audio.Frame
}

// OpenFile creates a file source from an .mp3, .flac or .wav path
func OpenFile(path string, cfg Config) (*FileSource, error) {
	open, err := decode.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open audio file: %v", ErrDeviceInit, err)
	}

	decoder, err := open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrDeviceInit, path, err)
	}

	log.Printf("Loaded %s (sample rate: %d Hz, channels: %d)", filepath.Base(path), decoder.SampleRate(), decoder.Channels())

	s := &FileSource{
		path:       path,
		file:       f,
		decoder:    decoder,
		open:       open,
		outputRate: decoder.SampleRate(),
	}
	if cfg.SampleRate > 0 && cfg.SampleRate != decoder.SampleRate() {
		log.Printf("Resampling %s from %d Hz to %d Hz", filepath.Base(path), decoder.SampleRate(), cfg.SampleRate)
		s.resampler = resample.New(decoder.SampleRate(), cfg.SampleRate)
		s.outputRate = cfg.SampleRate
	}
	s.pacer = newPacer(frameInterval(cfg.FrameSize, s.outputRate))

	return s, nil
}

// Record returns the next frame of the file, paced to real time
func (s *FileSource) Record(ctx context.Context, frameSize int) (audio.Frame, error) {
	if err := s.pacer.wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	if s.resampler == nil {
		return s.readMono(frameSize)
	}

	for len(s.pending) < frameSize {
		chunk, err := s.readMono(frameSize)
		if err != nil {
			return nil, err
		}
		s.pending = s.resampler.Resample(s.pending, chunk)
	}

	frame := make(audio.Frame, frameSize)
	copy(frame, s.pending)
	s.pending = append(s.pending[:0], s.pending[frameSize:]...)

	return frame, nil
}

// readMono decodes frameSize samples per channel at the file's rate,
// rewinding at EOF, and downmixes them
func (s *FileSource) readMono(frameSize int) (audio.Frame, error) {
	ch := s.decoder.Channels()
	buf := make([]float32, frameSize*ch)
	filled := 0

	// rewound is set until the decoder yields samples after a rewind
	rewound := false

	for filled < len(buf) {
		n, err := s.decoder.Read(buf[filled:])
		filled += n
		if n > 0 {
			rewound = false
		}
		if err == io.EOF {
			if rewound {
				return nil, fmt.Errorf("%w: %s contains no audio", ErrCapture, s.path)
			}
			if err := s.rewind(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCapture, err)
			}
			rewound = true
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCapture, err)
		}
	}

	return audio.Mono(buf, ch), nil
}

// rewind seeks to the start and creates a fresh decoder
func (s *FileSource) rewind() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to start: %w", err)
	}
	decoder, err := s.open(s.file)
	if err != nil {
		return fmt.Errorf("failed to create new decoder: %w", err)
	}
	s.decoder = decoder
	return nil
}

func (s *FileSource) SampleRate() int { return s.outputRate }
func (s *FileSource) Channels() int   { return s.decoder.Channels() }
func (s *FileSource) Name() string    { return filepath.Base(s.path) }
func (s *FileSource) Close() error    { return s.file.Close() }

// ABOUTME: Tests for tone and file sources
// ABOUTME: Verifies frame shape, tone continuity, looping and error wrapping
package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/halo/pkg/audio"
	"github.com/harperreed/halo/pkg/audio/decode"
	"github.com/harperreed/halo/pkg/audio/resample"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SampleRate != audio.SampleRate || cfg.Channels != audio.Channels || cfg.FrameSize != audio.BufferSize {
		t.Errorf("unexpected default config %+v", cfg)
	}

	// Four frames of 1024 samples at 44.1kHz
	if d := cfg.frameTimeout(); d < 90*time.Millisecond || d > 95*time.Millisecond {
		t.Errorf("expected ~93ms timeout, got %v", d)
	}

	cfg.Timeout = time.Second
	if cfg.frameTimeout() != time.Second {
		t.Error("explicit timeout should win")
	}
}

func TestToneSource(t *testing.T) {
	src := NewToneSource(0, DefaultConfig())
	src.pacer.interval = 0

	if src.Name() != "Test Tone (440Hz)" {
		t.Errorf("unexpected name %q", src.Name())
	}

	first, err := src.Record(context.Background(), audio.BufferSize)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	second, err := src.Record(context.Background(), audio.BufferSize)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if len(first) != audio.BufferSize || len(second) != audio.BufferSize {
		t.Fatalf("unexpected frame lengths %d, %d", len(first), len(second))
	}

	// The phase must continue across frames
	step := 2 * math.Pi * 440.0 / float64(audio.SampleRate)
	expected := 0.5 * math.Sin(step*float64(audio.BufferSize))
	if math.Abs(second[0]-expected) > 1e-9 {
		t.Errorf("expected continuous phase %f, got %f", expected, second[0])
	}

	for i, v := range first {
		if math.Abs(v) > 0.5+1e-9 {
			t.Fatalf("sample %d exceeds amplitude: %f", i, v)
		}
	}
}

func TestToneSourceCancelled(t *testing.T) {
	src := NewToneSource(440, DefaultConfig())
	src.pacer.interval = time.Hour
	src.pacer.next = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Record(ctx, audio.BufferSize)
	if !errors.Is(err, ErrCapture) {
		t.Fatalf("expected ErrCapture, got %v", err)
	}
}

func TestOpenFileUnsupported(t *testing.T) {
	_, err := OpenFile("song.ogg", DefaultConfig())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.mp3"), DefaultConfig())
	if !errors.Is(err, ErrDeviceInit) {
		t.Fatalf("expected ErrDeviceInit, got %v", err)
	}
}

// fakeReader yields a fixed number of constant stereo samples, then EOF
type fakeReader struct {
	remaining int
	value     float32
}

func (r *fakeReader) Read(dst []float32) (int, error) {
	n := len(dst)
	if n > r.remaining {
		n = r.remaining
	}
	for i := 0; i < n; i++ {
		dst[i] = r.value
	}
	r.remaining -= n
	if r.remaining == 0 {
		return n, io.EOF
	}
	return n, nil
}

func (r *fakeReader) SampleRate() int { return audio.SampleRate }
func (r *fakeReader) Channels() int   { return 2 }

func newFakeFileSource(t *testing.T, samples int) (*FileSource, *int) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "fake-*.mp3")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	opens := 0
	open := func(r io.Reader) (decode.Decoder, error) {
		opens++
		return &fakeReader{remaining: samples, value: 0.25}, nil
	}
	decoder, _ := open(f)

	return &FileSource{
		path:       f.Name(),
		file:       f,
		decoder:    decoder,
		open:       open,
		pacer:      newPacer(0),
		outputRate: decoder.SampleRate(),
	}, &opens
}

func TestFileSourceLoops(t *testing.T) {
	// 300 stereo samples per pass: a 1024-sample frame needs several loops
	src, opens := newFakeFileSource(t, 300)

	frame, err := src.Record(context.Background(), audio.BufferSize)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(frame) != audio.BufferSize {
		t.Fatalf("expected %d samples, got %d", audio.BufferSize, len(frame))
	}
	if *opens < 2 {
		t.Errorf("expected decoder to be reopened, got %d opens", *opens)
	}
	for i, v := range frame {
		if math.Abs(v-0.25) > 1e-6 {
			t.Fatalf("sample %d: expected 0.25, got %f", i, v)
		}
	}
}

func TestFileSourceEmpty(t *testing.T) {
	src, _ := newFakeFileSource(t, 0)

	_, err := src.Record(context.Background(), audio.BufferSize)
	if !errors.Is(err, ErrCapture) {
		t.Fatalf("expected ErrCapture for empty file, got %v", err)
	}
}

func TestFileSourceResamples(t *testing.T) {
	src, _ := newFakeFileSource(t, 100000)
	src.resampler = resample.New(48000, audio.SampleRate)
	src.outputRate = audio.SampleRate

	for i := 0; i < 3; i++ {
		frame, err := src.Record(context.Background(), audio.BufferSize)
		if err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
		if len(frame) != audio.BufferSize {
			t.Fatalf("expected %d samples, got %d", audio.BufferSize, len(frame))
		}
		for j, v := range frame {
			if math.Abs(v-0.25) > 1e-6 {
				t.Fatalf("frame %d sample %d: expected 0.25, got %f", i, j, v)
			}
		}
	}

	if src.SampleRate() != audio.SampleRate {
		t.Errorf("expected output rate %d, got %d", audio.SampleRate, src.SampleRate())
	}
	if len(src.pending) >= audio.BufferSize {
		t.Errorf("pending backlog should stay below a frame, got %d", len(src.pending))
	}
}

func writeWAV(t *testing.T, rate int, samples []int16) string {
	t.Helper()

	data := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
	}

	header := make([]byte, 44)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], uint32(36+len(data)))
	copy(header[8:], "WAVEfmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], 1)
	binary.LittleEndian.PutUint16(header[22:], 1)
	binary.LittleEndian.PutUint32(header[24:], uint32(rate))
	binary.LittleEndian.PutUint32(header[28:], uint32(rate*2))
	binary.LittleEndian.PutUint16(header[32:], 2)
	binary.LittleEndian.PutUint16(header[34:], 16)
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], uint32(len(data)))

	path := filepath.Join(t.TempDir(), "input.wav")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		t.Fatalf("failed to write wav: %v", err)
	}
	return path
}

func TestOpenFileWAVResampled(t *testing.T) {
	samples := make([]int16, 2000)
	for i := range samples {
		samples[i] = 8192
	}
	path := writeWAV(t, 48000, samples)

	cfg := DefaultConfig()
	src, err := OpenFile(path, cfg)
	if err != nil {
		t.Fatalf("failed to open wav: %v", err)
	}
	defer src.Close()
	src.pacer = newPacer(0)

	if src.SampleRate() != cfg.SampleRate {
		t.Errorf("expected output rate %d, got %d", cfg.SampleRate, src.SampleRate())
	}
	if src.Name() != "input.wav" {
		t.Errorf("expected name input.wav, got %s", src.Name())
	}

	for i := 0; i < 4; i++ {
		frame, err := src.Record(context.Background(), cfg.FrameSize)
		if err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
		if len(frame) != cfg.FrameSize {
			t.Fatalf("expected %d samples, got %d", cfg.FrameSize, len(frame))
		}
		for j, v := range frame {
			if math.Abs(v-0.25) > 1e-6 {
				t.Fatalf("frame %d sample %d: expected 0.25, got %f", i, j, v)
			}
		}
	}
}

// splitEOFReader returns its last samples with a nil error and reports
// io.EOF on a separate empty read, as block-based decoders do
type splitEOFReader struct {
	remaining int
}

func (r *splitEOFReader) Read(dst []float32) (int, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	n := min(len(dst), r.remaining)
	for i := 0; i < n; i++ {
		dst[i] = 0.5
	}
	r.remaining -= n
	return n, nil
}

func (r *splitEOFReader) SampleRate() int { return audio.SampleRate }
func (r *splitEOFReader) Channels() int   { return 2 }

func TestFileSourceLoopsShortFileWithSeparateEOF(t *testing.T) {
	src, opens := newFakeFileSource(t, 0)
	src.open = func(r io.Reader) (decode.Decoder, error) {
		*opens++
		return &splitEOFReader{remaining: 600}, nil
	}
	src.decoder, _ = src.open(src.file)

	for i := 0; i < 3; i++ {
		frame, err := src.Record(context.Background(), audio.BufferSize)
		if err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
		if len(frame) != audio.BufferSize {
			t.Fatalf("expected %d samples, got %d", audio.BufferSize, len(frame))
		}
		for j, v := range frame {
			if math.Abs(v-0.5) > 1e-6 {
				t.Fatalf("frame %d sample %d: expected 0.5, got %f", i, j, v)
			}
		}
	}

	// 2048 stereo samples per frame from 600-sample passes needs several reopens per frame
	if *opens < 4 {
		t.Errorf("expected repeated rewinds, got %d opens", *opens)
	}
}

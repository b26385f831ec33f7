// ABOUTME: WAV/PCM audio decoder
// ABOUTME: Parses RIFF WAVE headers and decodes 16-bit and 24-bit PCM
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/halo/pkg/audio"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// WAVDecoder decodes uncompressed PCM from a WAV stream
type WAVDecoder struct {
	r         io.Reader
	rate      int
	channels  int
	bitDepth  int
	remaining int64
	buf       []byte
}

// NewWAV reads the WAV header up to the start of the data chunk
func NewWAV(r io.Reader) (Decoder, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("failed to read wav header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: not a RIFF WAVE stream", ErrUnsupported)
	}

	d := &WAVDecoder{r: r}
	haveFormat := false

	for {
		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return nil, fmt.Errorf("failed to read wav chunk: %w", err)
		}
		id := string(header[0:4])
		size := int64(binary.LittleEndian.Uint32(header[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("wav fmt chunk too short: %d bytes", size)
			}
			chunk := make([]byte, size)
			if _, err := io.ReadFull(r, chunk); err != nil {
				return nil, fmt.Errorf("failed to read wav fmt chunk: %w", err)
			}
			if err := d.parseFormat(chunk); err != nil {
				return nil, err
			}
			haveFormat = true
			if size%2 == 1 {
				if _, err := io.CopyN(io.Discard, r, 1); err != nil {
					return nil, fmt.Errorf("failed to skip wav padding: %w", err)
				}
			}

		case "data":
			if !haveFormat {
				return nil, errors.New("wav data chunk before fmt chunk")
			}
			d.remaining = size
			return d, nil

		default:
			if _, err := io.CopyN(io.Discard, r, size+size%2); err != nil {
				return nil, fmt.Errorf("failed to skip wav chunk %q: %w", id, err)
			}
		}
	}
}

func (d *WAVDecoder) parseFormat(chunk []byte) error {
	tag := binary.LittleEndian.Uint16(chunk[0:2])
	if tag != wavFormatPCM && tag != wavFormatExtensible {
		return fmt.Errorf("%w: wav format tag %#x", ErrUnsupported, tag)
	}

	d.channels = int(binary.LittleEndian.Uint16(chunk[2:4]))
	d.rate = int(binary.LittleEndian.Uint32(chunk[4:8]))
	d.bitDepth = int(binary.LittleEndian.Uint16(chunk[14:16]))

	if d.bitDepth != 16 && d.bitDepth != 24 {
		return fmt.Errorf("%w: bit depth %d (supported: 16, 24)", ErrUnsupported, d.bitDepth)
	}
	if d.channels < 1 {
		return fmt.Errorf("wav stream has %d channels", d.channels)
	}
	return nil
}

// Read converts PCM bytes to float32 samples
func (d *WAVDecoder) Read(dst []float32) (int, error) {
	if d.remaining <= 0 {
		return 0, io.EOF
	}

	width := d.bitDepth / 8
	need := int64(len(dst) * width)
	if need > d.remaining {
		need = d.remaining
	}
	if int64(cap(d.buf)) < need {
		d.buf = make([]byte, need)
	}
	buf := d.buf[:need]

	n, err := io.ReadFull(d.r, buf)
	d.remaining -= int64(n)
	if err == io.ErrUnexpectedEOF || d.remaining == 0 {
		err = io.EOF
	}

	numSamples := n / width
	for i := 0; i < numSamples; i++ {
		if d.bitDepth == 24 {
			b := [3]byte{buf[i*3], buf[i*3+1], buf[i*3+2]}
			dst[i] = audio.SampleFromInt(audio.SampleFrom24Bit(b), 24)
		} else {
			dst[i] = audio.SampleFromInt16(int16(binary.LittleEndian.Uint16(buf[i*2:])))
		}
	}
	return numSamples, err
}

func (d *WAVDecoder) SampleRate() int { return d.rate }
func (d *WAVDecoder) Channels() int   { return d.channels }

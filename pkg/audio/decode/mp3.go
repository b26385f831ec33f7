// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 streams to float32 samples with go-mp3
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/harperreed/halo/pkg/audio"
)

// MP3Decoder decodes MP3 audio. go-mp3 always produces 16-bit stereo.
type MP3Decoder struct {
	decoder *mp3.Decoder
	buf     []byte
}

// NewMP3 creates a new MP3 decoder
func NewMP3(r io.Reader) (Decoder, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}
	return &MP3Decoder{decoder: decoder}, nil
}

// Read converts decoded MP3 bytes to float32 samples
func (d *MP3Decoder) Read(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(d.buf) < need {
		d.buf = make([]byte, need)
	}
	buf := d.buf[:need]

	n, err := io.ReadFull(d.decoder, buf)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}

	numSamples := n / 2
	for i := 0; i < numSamples; i++ {
		dst[i] = audio.SampleFromInt16(int16(binary.LittleEndian.Uint16(buf[i*2:])))
	}
	return numSamples, err
}

func (d *MP3Decoder) SampleRate() int { return d.decoder.SampleRate() }
func (d *MP3Decoder) Channels() int   { return 2 }

// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC streams frame by frame with mewkiz/flac
package decode

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/harperreed/halo/pkg/audio"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct {
	stream   *flac.Stream
	rate     int
	channels int
	bitDepth int
	pending  []float32
}

// NewFLAC creates a new FLAC decoder
func NewFLAC(r io.Reader) (Decoder, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create flac decoder: %w", err)
	}
	return &FLACDecoder{
		stream:   stream,
		rate:     int(stream.Info.SampleRate),
		channels: int(stream.Info.NChannels),
		bitDepth: int(stream.Info.BitsPerSample),
	}, nil
}

// Read decodes as many frames as needed to fill dst, keeping leftovers
func (d *FLACDecoder) Read(dst []float32) (int, error) {
	filled := 0
	for filled < len(dst) {
		if len(d.pending) == 0 {
			frame, err := d.stream.ParseNext()
			if err != nil {
				return filled, err
			}

			blockSize := int(frame.BlockSize)
			d.pending = make([]float32, 0, blockSize*d.channels)
			for i := 0; i < blockSize; i++ {
				for ch := 0; ch < d.channels; ch++ {
					d.pending = append(d.pending, audio.SampleFromInt(frame.Subframes[ch].Samples[i], d.bitDepth))
				}
			}
		}

		n := copy(dst[filled:], d.pending)
		d.pending = d.pending[n:]
		filled += n
	}
	return filled, nil
}

func (d *FLACDecoder) SampleRate() int { return d.rate }
func (d *FLACDecoder) Channels() int   { return d.channels }

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/bpanahij/virtualmic/audio"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	bitDepth   int
	pending    []float32 // interleaved samples left over from the last frame
	offset     int       // read position within pending
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if cap(s.pending) > 0 {
		return cap(s.pending)
	}
	return 4096
}

// fillPending decodes the next FLAC frame and interleaves its subframes.
func (s *source) fillPending() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("parse flac frame: %w", err)
	}

	if len(f.Subframes) < s.channels {
		return ErrCorruptFrame
	}

	blockSize := len(f.Subframes[0].Samples)
	needed := blockSize * s.channels
	if cap(s.pending) < needed {
		s.pending = make([]float32, needed)
	}
	s.pending = s.pending[:needed]
	s.offset = 0

	// FLAC stores one subframe per channel; interleave and normalize
	scale := float32(int64(1) << (s.bitDepth - 1))
	for ch := 0; ch < s.channels; ch++ {
		samples := f.Subframes[ch].Samples
		for i := 0; i < blockSize && i < len(samples); i++ {
			s.pending[i*s.channels+ch] = float32(samples[i]) / scale
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	filled := 0
	for filled < len(dst) {
		if s.offset >= len(s.pending) {
			if err := s.fillPending(); err != nil {
				if err == io.EOF {
					if filled == 0 {
						return 0, io.EOF
					}
					return filled, io.EOF
				}
				return filled, err
			}
		}

		n := copy(dst[filled:], s.pending[s.offset:])
		filled += n
		s.offset += n
	}

	return filled, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info.BitsPerSample < 8 || info.BitsPerSample > 32 {
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}

// SPDX-License-Identifier: EPL-2.0

package virtualmic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bpanahij/virtualmic/audio"
	"github.com/bpanahij/virtualmic/formats/aiff"
	"github.com/bpanahij/virtualmic/formats/flac"
	"github.com/bpanahij/virtualmic/formats/mp3"
	"github.com/bpanahij/virtualmic/formats/vorbis"
	"github.com/bpanahij/virtualmic/formats/wav"
	"github.com/bpanahij/virtualmic/utils"
)

// Microphone capture format. 48 kHz mono matches what conferencing
// applications negotiate, so the audio server never has to convert again.
const (
	DefaultSampleRate = 48000
	MicChannels       = 1
)

// ErrUnsupportedFormat is returned by Open for file extensions that no
// registered decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a decoder registry with every built-in format
// registered under its usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})
	return reg
}

// fileSource couples a decoded stream with the file it reads from, so that
// closing the source also closes the file. Decoders themselves never own
// the reader they are handed.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open opens path and decodes it with the decoder registered for its
// extension. The returned source owns the underlying file handle.
func Open(path string) (audio.Source, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := NewRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// NewPipeline builds the stream a virtual microphone carries: mono mixdown,
// resample to rate, then volume scaling. Mixing down before resampling
// halves the interpolation work for stereo input.
func NewPipeline(src audio.Source, rate int, volume float64) audio.Source {
	var out audio.Source = audio.NewMonoMixer(src)
	if out.SampleRate() != rate {
		out = audio.NewResampler(out, rate)
	}
	if volume != 1.0 {
		out = audio.NewGain(out, volume)
	}
	return out
}

// CollectPCM16 drains src and converts every sample to 16-bit PCM.
// bufferSize controls the read granularity; 4096 is a good default.
//
// This is the offline counterpart of streaming into the microphone, used
// to render the processed stream to a WAV file.
func CollectPCM16(src audio.Source, bufferSize int) ([]int16, error) {
	pcm16 := make([]int16, 0, src.SampleRate()*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return pcm16, fmt.Errorf("read samples: %w", err)
		}
	}
}

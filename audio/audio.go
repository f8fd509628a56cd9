// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

// Source is a stream of interleaved PCM samples. Every processing stage
// in this package both consumes and implements it, so stages compose
// freely: a decoder output can feed a MonoMixer, which can feed a
// Resampler, and so on up to whatever finally drains the stream.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1]
	// and returns the number of values written (not frames). A short
	// read with err == nil is valid; n == 0 with err == io.EOF means
	// the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the read granularity the source performs best at.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader. The decoder does not
// take ownership of r; the caller closes it after the Source is done.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions to decoders. Lookups are
// case-insensitive, so "WAV" and "wav" resolve to the same decoder.
type Registry struct {
	mtx    sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

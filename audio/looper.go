package audio

import (
	"fmt"
	"io"
)

// OpenFunc produces a fresh Source for another pass over the same audio.
type OpenFunc func() (Source, error)

// Looper restarts its source whenever it is exhausted, turning a finite
// stream into an endless one. On EOF the current source is closed and the
// open function is called for a replacement.
//
// A pass that yields no samples at all stops the loop with ErrNoSamples,
// so an empty file cannot spin forever.
type Looper struct {
	src    Source
	open   OpenFunc
	played int // samples read from the current pass
}

// NewLooper wraps src, reopening with open on every EOF. The replacement
// source must match the original sample rate and channel count; decoding
// the same file again always does.
func NewLooper(src Source, open OpenFunc) *Looper {
	return &Looper{src: src, open: open}
}

func (l *Looper) SampleRate() int { return l.src.SampleRate() }
func (l *Looper) Channels() int   { return l.src.Channels() }
func (l *Looper) BufSize() int    { return l.src.BufSize() }

func (l *Looper) Close() error {
	err := l.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// rewind closes the exhausted source and opens the next pass.
func (l *Looper) rewind() error {
	if l.played == 0 {
		return ErrNoSamples
	}

	if err := l.src.Close(); err != nil {
		return fmt.Errorf("close exhausted source: %w", err)
	}

	src, err := l.open()
	if err != nil {
		return fmt.Errorf("reopen source: %w", err)
	}

	l.src = src
	l.played = 0
	return nil
}

func (l *Looper) ReadSamples(dst []float32) (int, error) {
	filled := 0

	for filled < len(dst) {
		n, err := l.src.ReadSamples(dst[filled:])
		filled += n
		l.played += n

		if err == io.EOF {
			if rerr := l.rewind(); rerr != nil {
				return filled, rerr
			}
			continue
		}
		if err != nil {
			return filled, fmt.Errorf("%w", err)
		}
	}

	return filled, nil
}

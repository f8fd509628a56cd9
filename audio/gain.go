package audio

import "fmt"

// Gain scales every sample from src by a constant factor.
// A factor of 1 passes audio through unchanged, 0 silences it, and values
// above 1 amplify. Output is not clipped; downstream consumers that need
// bounded samples (e.g. int16 conversion) clamp themselves.
type Gain struct {
	src    Source
	factor float32
}

func NewGain(src Source, factor float64) *Gain {
	return &Gain{
		src:    src,
		factor: float32(factor),
	}
}

// Factor returns the configured multiplier.
func (g *Gain) Factor() float64 { return float64(g.factor) }

func (g *Gain) SampleRate() int { return g.src.SampleRate() }
func (g *Gain) Channels() int   { return g.src.Channels() }
func (g *Gain) BufSize() int    { return g.src.BufSize() }
func (g *Gain) Close() error {
	err := g.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)
	if g.factor == 1 {
		return n, err
	}

	for i := 0; i < n; i++ {
		dst[i] *= g.factor
	}

	return n, err
}

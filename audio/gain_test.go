package audio

import (
	"io"
	"math"
	"testing"
)

func TestGain_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(48000, 2, 1000)
	gain := NewGain(src, 0.5)

	if gain.SampleRate() != 48000 {
		t.Errorf("Gain.SampleRate() = %d, want 48000", gain.SampleRate())
	}

	if gain.Channels() != 2 {
		t.Errorf("Gain.Channels() = %d, want 2", gain.Channels())
	}

	if gain.Factor() != 0.5 {
		t.Errorf("Gain.Factor() = %v, want 0.5", gain.Factor())
	}
}

func TestGain_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		factor float64
		input  float32
		want   float32
	}{
		{"unity", 1.0, 0.5, 0.5},
		{"half", 0.5, 0.5, 0.25},
		{"silence", 0.0, 0.8, 0.0},
		{"amplify", 2.0, 0.25, 0.5},
		{"negative input", 0.5, -0.6, -0.3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newConstantSource(8000, 1, 100, tt.input)
			gain := NewGain(src, tt.factor)

			buf := make([]float32, 100)
			n, err := gain.ReadSamples(buf)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n == 0 {
				t.Fatal("ReadSamples() returned 0 samples")
			}

			for i := 0; i < n; i++ {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
					break
				}
			}
		})
	}
}

func TestGain_UnityPassthrough(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 1, 8000, 440.0)
	ref := newSineSource(8000, 1, 8000, 440.0)
	gain := NewGain(src, 1.0)

	buf := make([]float32, 1024)
	refBuf := make([]float32, 1024)

	n, err := gain.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	rn, _ := ref.ReadSamples(refBuf)
	if n != rn {
		t.Fatalf("ReadSamples() n = %d, want %d", n, rn)
	}

	for i := 0; i < n; i++ {
		if buf[i] != refBuf[i] {
			t.Errorf("buf[%d] = %v, want %v (unity gain must not alter samples)", i, buf[i], refBuf[i])
			break
		}
	}
}

func TestGain_PropagatesEOF(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 10, 0.1)
	gain := NewGain(src, 2.0)

	buf := make([]float32, 64)
	total := 0

	for {
		n, err := gain.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 10 {
		t.Errorf("read %d samples, want 10", total)
	}
}

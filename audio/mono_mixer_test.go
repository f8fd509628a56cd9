package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newSilentSource(44100, 2, 100))

	if m.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", m.SampleRate())
	}
	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 1, 100, 440.0)
	ref := newSineSource(8000, 1, 100, 440.0)
	m := NewMonoMixer(src)

	got := make([]float32, 100)
	want := make([]float32, 100)
	n, err := m.ReadSamples(got)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	rn, _ := ref.ReadSamples(want)
	if n != rn {
		t.Fatalf("ReadSamples() n = %d, want %d", n, rn)
	}
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v (mono must pass through untouched)", i, got[i], want[i])
			break
		}
	}
}

func TestMonoMixer_Averaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(channel int) float32
		want     float32
	}{
		{"stereo average", 2, func(ch int) float32 {
			if ch == 0 {
				return 0.6
			}
			return 0.2
		}, 0.4},
		{"stereo cancel", 2, func(ch int) float32 {
			if ch == 0 {
				return 0.5
			}
			return -0.5
		}, 0},
		{"quad", 4, func(ch int) float32 { return float32(ch) / 10 }, 0.15},
		{"five one", 6, func(ch int) float32 { return 0.3 }, 0.3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newMockSource(48000, tt.channels, 50, func(frame, channel int) float32 {
				return tt.value(channel)
			})
			m := NewMonoMixer(src)

			dst := make([]float32, 50)
			n, err := m.ReadSamples(dst)
			if err != nil && err != io.EOF {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 50 {
				t.Fatalf("ReadSamples() n = %d, want 50", n)
			}
			for i := 0; i < n; i++ {
				if math.Abs(float64(dst[i]-tt.want)) > 1e-6 {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], tt.want)
					break
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newSilentSource(8000, 2, 30))

	dst := make([]float32, 64)
	n, err := m.ReadSamples(dst)
	if n != 30 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (30, io.EOF)", n, err)
	}

	n, err = m.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() past EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newSilentSource(8000, 2, 10))

	if n, err := m.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_ChunkedReads(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newConstantSource(8000, 2, 100, 0.4))

	dst := make([]float32, 7)
	total := 0
	for {
		n, err := m.ReadSamples(dst)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(float64(dst[i]-0.4)) > 1e-6 {
				t.Fatalf("dst[%d] = %v, want 0.4", i, dst[i])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	if total != 100 {
		t.Errorf("read %d mono samples, want 100", total)
	}
}

func TestMonoMixer_GrowsScratchBuffer(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newConstantSource(8000, 6, 8192, 0.1))

	// 8192 mono samples need 49152 interleaved source samples, far past
	// the initial scratch capacity.
	dst := make([]float32, 8192)
	n, err := m.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8192 {
		t.Errorf("ReadSamples() n = %d, want 8192", n)
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	src := newSineSource(44100, 2, 44100, 440.0)
	m := NewMonoMixer(src)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.ReadSamples(dst); err == io.EOF {
			src.Reset()
		}
	}
}

func BenchmarkMonoMixer_SixChannel(b *testing.B) {
	src := newConstantSource(48000, 6, 48000, 0.25)
	m := NewMonoMixer(src)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.ReadSamples(dst); err == io.EOF {
			src.Reset()
		}
	}
}

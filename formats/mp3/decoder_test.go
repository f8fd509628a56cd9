package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// pcmFeed stands in for gomp3.Decoder, serving canned int16 samples as
// the little-endian byte stream the real decoder produces.
type pcmFeed struct {
	rate    int
	samples []int16
	pos     int
	fail    error
}

func (p *pcmFeed) SampleRate() int { return p.rate }

func (p *pcmFeed) Read(buf []byte) (int, error) {
	if p.fail != nil {
		return 0, p.fail
	}
	if p.pos >= len(p.samples) {
		return 0, io.EOF
	}

	n := len(buf) / 2
	if left := len(p.samples) - p.pos; n > left {
		n = left
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(p.samples[p.pos+i]))
	}
	p.pos += n

	if p.pos >= len(p.samples) {
		return n * 2, io.EOF
	}
	return n * 2, nil
}

func newSource(feed *pcmFeed) *source {
	return &source{dec: feed, sampleRate: feed.rate, channels: 2, buf: make([]byte, 8192)}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("not an mpeg stream")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%d bytes) error = nil, want error", len(data))
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&pcmFeed{rate: 44100, samples: make([]int16, 16)})

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_SampleConversion(t *testing.T) {
	t.Parallel()

	in := []int16{0, 1, -1, 16384, -16384, 32767, -32768}
	want := []float32{0, 1.0 / 32768, -1.0 / 32768, 0.5, -0.5, 32767.0 / 32768, -1}

	src := newSource(&pcmFeed{rate: 8000, samples: in})

	dst := make([]float32, len(in))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(in) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(in))
	}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_EOFContract(t *testing.T) {
	t.Parallel()

	src := newSource(&pcmFeed{rate: 8000, samples: []int16{100, 200, 300, 400}})

	dst := make([]float32, 4)
	if n, err := src.ReadSamples(dst); n != 4 || err != io.EOF {
		t.Errorf("final ReadSamples() = (%d, %v), want (4, io.EOF)", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() past EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ChunkedReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10)
	for i := range samples {
		samples[i] = int16(i * 1000)
	}
	src := newSource(&pcmFeed{rate: 8000, samples: samples})

	dst := make([]float32, 4)
	var counts []int
	for {
		n, err := src.ReadSamples(dst)
		counts = append(counts, n)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Errorf("read %d samples across %d calls, want 10", total, len(counts))
	}
	if last := counts[len(counts)-1]; last != 2 {
		t.Errorf("final chunk = %d samples, want 2", last)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newSource(&pcmFeed{rate: 8000, samples: make([]int16, 8)})

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_GrowsByteBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &pcmFeed{rate: 44100, samples: make([]int16, 1000)},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 64),
	}

	dst := make([]float32, 1000)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if cap(src.buf) < 2000 {
		t.Errorf("buf cap = %d, want at least 2000 after a 1000-sample read", cap(src.buf))
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := newSource(&pcmFeed{rate: 8000, fail: io.ErrUnexpectedEOF})

	if _, err := src.ReadSamples(make([]float32, 8)); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	feed := &pcmFeed{rate: 44100, samples: samples}
	src := newSource(feed)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		feed.pos = 0
		_, _ = src.ReadSamples(dst)
	}
}

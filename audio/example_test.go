// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/bpanahij/virtualmic/audio"
	"github.com/bpanahij/virtualmic/internal/audiotest"
)

func drain(src audio.Source) int {
	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err != nil {
			return total
		}
	}
}

// Resampling one second of a 44.1 kHz tone down to 16 kHz.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0)
	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Total samples read: %d\n", drain(resampler))
	// Output:
	// Output sample rate: 16000 Hz
	// Total samples read: 16000
}

// Folding a stereo stream down to one channel.
func Example_monoMixer() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0)
	mono := audio.NewMonoMixer(source)

	fmt.Printf("Channels: %d -> %d\n", source.Channels(), mono.Channels())

	buf := make([]float32, 100)
	n, _ := mono.ReadSamples(buf)
	fmt.Printf("Read %d mono samples\n", n)
	// Output:
	// Channels: 2 -> 1
	// Read 100 mono samples
}

// Stages stack: stereo 44.1 kHz in, mono 8 kHz out.
func Example_processingChain() {
	source := audiotest.NewSineSource(44100, 2, 44100, 440.0)
	resampled := audio.NewResampler(source, 8000)
	mono := audio.NewMonoMixer(resampled)

	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())
	fmt.Printf("Channels: %d\n", mono.Channels())
	fmt.Printf("Total samples: %d\n", drain(mono))
	// Output:
	// Sample rate: 8000 Hz
	// Channels: 1
	// Total samples: 8000
}

type sineDecoder struct{}

func (sineDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Decoders are looked up by file extension, case-insensitively.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("sine", sineDecoder{})

	if _, ok := registry.Get("SINE"); ok {
		fmt.Println("found decoder for .sine")
	}
	if _, ok := registry.Get("webm"); !ok {
		fmt.Println("no decoder for .webm")
	}
	// Output:
	// found decoder for .sine
	// no decoder for .webm
}

// Gain scales every sample by a fixed factor.
func Example_gain() {
	source := audiotest.NewConstantSource(48000, 1, 48000, 0.8)
	gain := audio.NewGain(source, 0.5)

	buf := make([]float32, 1)
	if n, _ := gain.ReadSamples(buf); n > 0 {
		fmt.Printf("0.8 scaled by 0.5 is %.1f\n", buf[0])
	}
	// Output:
	// 0.8 scaled by 0.5 is 0.4
}

// Looper reopens its source at EOF, so reads never run dry.
func Example_looper() {
	first := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	looper := audio.NewLooper(first, func() (audio.Source, error) {
		return audiotest.NewConstantSource(8000, 1, 100, 0.5), nil
	})

	buf := make([]float32, 250)
	n, err := looper.ReadSamples(buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("read %d samples from a 100-sample source\n", n)
	// Output:
	// read 250 samples from a 100-sample source
}

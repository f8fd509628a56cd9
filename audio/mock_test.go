package audio

import "github.com/bpanahij/virtualmic/internal/audiotest"

// The audiotest generators implement Source without importing this
// package. The wrappers below keep test call sites short.

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *audiotest.MockSource {
	return audiotest.NewMockSource(sampleRate, channels, totalFrames, waveform)
}

func newSilentSource(sampleRate, channels, totalFrames int) *audiotest.MockSource {
	return audiotest.NewSilentSource(sampleRate, channels, totalFrames)
}

func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *audiotest.MockSource {
	return audiotest.NewSineSource(sampleRate, channels, totalFrames, frequency)
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *audiotest.MockSource {
	return audiotest.NewConstantSource(sampleRate, channels, totalFrames, value)
}

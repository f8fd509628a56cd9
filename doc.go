// SPDX-License-Identifier: EPL-2.0

// Package virtualmic turns an audio file into a synthetic microphone on a
// Linux PulseAudio or PipeWire audio server.
//
// The heavy lifting stays inside the audio server: the package drives pactl
// to create a null-sink plus a remap-source exposing the sink monitor as a
// microphone, decodes the input file to a float32 stream, and pipes that
// stream into the sink through pacat. Other applications then see the
// remap-source as a regular input device.
//
// # Supported Formats
//
// Decoding is delegated to existing libraries, selected by file extension:
//   - WAV via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//   - FLAC via formats/flac
//
// # Quick Start
//
// Open a file and build the processing pipeline the microphone will carry:
//
//	src, _ := virtualmic.Open("speech.mp3")
//	defer src.Close()
//
//	// Mono, 48 kHz, at half volume
//	stream := virtualmic.NewPipeline(src, 48000, 0.5)
//
//	buf := make([]float32, 4096)
//	n, err := stream.ReadSamples(buf)
//
// Device lifecycle and streaming live in internal/pulse and internal/player
// and are wired together by the virtualmic command:
//
//	virtualmic play --file speech.mp3 --name VirtualMic
//
// # Audio Processing Pipeline
//
// The pipeline is built from the audio subpackage primitives:
//
//	mono := audio.NewMonoMixer(src)
//	res := audio.NewResampler(mono, 48000)
//	out := audio.NewGain(res, volume)
//
// Looping playback wraps the file source in an audio.Looper, which reopens
// the file whenever the stream is exhausted.
//
// # Offline Rendering
//
// CollectPCM16 drains a pipeline into 16-bit PCM, which the wav subpackage
// can write out. This is what `virtualmic render` uses to audition a file
// exactly as the microphone would carry it.
//
// See the individual subpackages for more detailed documentation.
package virtualmic

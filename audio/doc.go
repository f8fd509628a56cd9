// SPDX-License-Identifier: EPL-2.0

// Package audio holds the stream primitives the rest of the module is
// built from.
//
// Everything speaks Source: decoders produce one, processing stages
// wrap one. Samples are interleaved float32 in [-1.0, 1.0], which is
// also the f32le wire format pacat accepts, so the end of a pipeline
// needs no further conversion.
//
// The stages compose by wrapping:
//
//	src, _ := virtualmic.Open(path)
//	mono := audio.NewMonoMixer(src)           // N channels -> 1
//	fast := audio.NewResampler(mono, 48000)   // any rate -> 48 kHz
//	soft := audio.NewGain(fast, 0.5)          // volume
//
// Resampler uses cubic interpolation over a four-frame window, with a
// one-pole low-pass ahead of it when downsampling. MonoMixer averages
// channels. Gain scales without clipping; the int16 conversion at the
// edge clamps instead. Looper turns a finite stream into an endless
// one by reopening its source at EOF.
//
// Registry maps file extensions to Decoder implementations,
// case-insensitively. virtualmic.NewRegistry preloads it with every
// built-in format.
//
// Sources return io.EOF when exhausted, usually together with the
// final samples:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n] before checking err
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio

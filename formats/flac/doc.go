// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to decode FLAC files.
// FLAC is a free lossless audio compression format.
//
// # Supported Formats
//
// The decoder supports:
//   - FLAC (.flac files)
//   - 8 to 32-bit sample depths
//   - Mono, stereo and multi-channel
//   - Various sample rates
//
// # Decoding FLAC Files
//
// Use the Decoder to read FLAC files:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Output Format
//
// FLAC frames carry one subframe per channel; the decoder interleaves
// them into the usual frame-major sample order before normalizing.
//
// # Limitations
//
// Note:
//   - FLAC writing is not supported (decoding only)
//   - Ogg-encapsulated FLAC is not supported, plain .flac only
package flac

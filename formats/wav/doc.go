// SPDX-License-Identifier: EPL-2.0

// Package wav reads PCM WAV files and writes 16-bit mono WAV files.
//
// Decoding goes through github.com/go-audio/wav, which handles the
// chunk layout, so files with extra metadata chunks decode fine. PCM
// at 8, 16, 24 and 32 bits is accepted at any rate and channel count;
// float and compressed variants fail with ErrOnlyPCMSupported. The
// returned audio.Source yields float32 samples in [-1.0, 1.0].
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // wrong container
//	}
//
// WriteWAV16 is the encoder counterpart used by offline rendering. It
// produces a minimal mono 16-bit file: 44-byte header in one write,
// sample data in 8K chunks.
//
//	err := wav.WriteWAV16(out, 48000, pcm16)
package wav

// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Only 16-bit PCM files are accepted; other bit depths fail with
// ErrOnlyPCM16bitSupported. Decode returns an audio.Source with
// samples normalized to [-1.0, 1.0], keeping the channel count and
// sample rate of the file.
//
// go-audio walks the chunk layout with seeks, so non-seekable input is
// buffered in memory before decoding.
package aiff

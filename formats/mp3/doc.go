// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 streams through
// github.com/hajimehoshi/go-mp3.
//
// Decode returns an audio.Source with samples normalized to
// [-1.0, 1.0]. go-mp3 always renders two interleaved channels, so
// Channels is 2 regardless of the file; feed the source through
// audio.NewMonoMixer when one channel is wanted:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(src)
//
// Encoding is out of scope, decode only.
package mp3

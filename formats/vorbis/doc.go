// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Decode returns an audio.Source carrying the stream's own channel
// count and sample rate. Vorbis is a float codec, so samples pass
// through without renormalization. Reads are rounded down to whole
// frames; a request smaller than one frame yields zero samples.
//
// Both .ogg and .oga extensions route here.
package vorbis

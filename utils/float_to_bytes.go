package utils

import (
	"encoding/binary"
	"math"
)

// Float32ToBytes encodes samples as little-endian IEEE 754 float32, the
// f32le wire format audio servers accept for raw playback. dst must hold
// at least 4*len(samples) bytes; the number of bytes written is returned.
func Float32ToBytes(dst []byte, samples []float32) int {
	for i, s := range samples {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], math.Float32bits(s))
	}
	return len(samples) * 4
}

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Input is
// clamped to [-1, 1] first; the positive end maps to 32767 so the
// conversion can never overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

package flac

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	ErrCorruptFrame        = errors.New("corrupt FLAC frame")
)

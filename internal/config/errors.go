package config

import "errors"

var (
	ErrInvalidName = errors.New("device name may only contain letters, digits, dot, dash and underscore")
	ErrInvalidRate = errors.New("sample rate must be positive")
)

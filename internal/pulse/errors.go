package pulse

import "errors"

var (
	ErrPactlNotFound = errors.New("pactl not found")
	ErrBadModuleID   = errors.New("unexpected pactl output")
)

package player

import "errors"

var ErrPacatNotFound = errors.New("pacat not found")

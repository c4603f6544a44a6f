package frame

import "errors"

var (
	ErrInvalidFPS     = errors.New("frame: frame rate cap must be positive")
	ErrAlreadyStarted = errors.New("frame: scheduler already started")
	ErrNotStarted     = errors.New("frame: scheduler not started")
)

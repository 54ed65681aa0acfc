package universe

import "errors"

var (
	ErrOutOfRange       = errors.New("coordinate out of range")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidSteps     = errors.New("steps must be at least 1")
)

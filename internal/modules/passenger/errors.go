package passenger

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("passenger not found")
)

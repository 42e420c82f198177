package standby

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("standby request not found")
	ErrInvalidStatus = errors.New("standby status does not permit this operation")
)

package diagnosis

import "errors"

var (
	ErrNotFound  = errors.New("diagnosis not found")
	ErrInvalidID = errors.New("invalid diagnosis id")
)

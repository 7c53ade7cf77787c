package contact

import "errors"

var (
	ErrInvalidInput = errors.New("name, email, subject and message are required")
	ErrInternal     = errors.New("failed to save contact message")
)

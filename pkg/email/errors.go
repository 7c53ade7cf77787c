package email

import (
	"errors"
	"fmt"
)

var (
	ErrDisabled       = errors.New("email: sending is disabled")
	ErrInvalidMessage = errors.New("email: invalid message")
)

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMessage, reason)
}

// SendError is a transport failure reported by the SMTP server or dialer.
type SendError struct {
	Host string
	Err  error
}

func (e *SendError) Error() string { return fmt.Sprintf("email: smtp %s: %v", e.Host, e.Err) }
func (e *SendError) Unwrap() error { return e.Err }
